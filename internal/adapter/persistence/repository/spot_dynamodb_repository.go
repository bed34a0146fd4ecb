package repository

import (
	"context"
	"errors"

	"parkhub/internal/domain/entities"
	"parkhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSpotsTableName = "parking_spots"
	spotsCategoryIndex    = "category-index"
)

// ErrSpotUnavailable reports a claim on a spot that is no longer free. The
// occupy write is conditional on availability, so a race lost between select
// and claim surfaces here instead of double-parking a vehicle.
var ErrSpotUnavailable = errors.New("parking spot is not available")

type parkingSpotItem struct {
	ID        int    `dynamodbav:"id"`
	Category  string `dynamodbav:"category"`
	Available bool   `dynamodbav:"available"`
}

// SpotDynamoRepository persists ParkingSpot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: category-index (PK: category)
//
// The facility layout is seeded at bootstrap; this repository only ever
// flips the availability flag.

type SpotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISpotRepository = (*SpotDynamoRepository)(nil)

func NewSpotDynamoRepository(ddb *dynamodb.Client) *SpotDynamoRepository {
	return &SpotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARKING_SPOTS_TABLE", defaultSpotsTableName),
	}
}

func (r *SpotDynamoRepository) NextAvailable(ctx context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(spotsCategoryIndex),
		KeyConditionExpression: aws.String("category = :category"),
		FilterExpression:       aws.String("available = :available"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category":  &types.AttributeValueMemberS{Value: string(category)},
			":available": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.ParkingSpot{}, err
	}

	// The index is keyed by category only; pick the lowest spot number here.
	var best parkingSpotItem
	for _, raw := range out.Items {
		var it parkingSpotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.ParkingSpot{}, err
		}
		if best.ID == 0 || it.ID < best.ID {
			best = it
		}
	}
	if best.ID == 0 {
		return entities.ParkingSpot{}, nil
	}
	return fromParkingSpotItem(best), nil
}

func (r *SpotDynamoRepository) SetAvailability(ctx context.Context, id int, available bool) error {
	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":available": &types.AttributeValueMemberBOOL{Value: available},
	}
	if !available {
		// Claiming is a compare-and-swap: the spot must still be free.
		condition = "attribute_exists(#id) AND available = :free"
		values[":free"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET available = :available"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) && !available {
			return ErrSpotUnavailable
		}
		return err
	}
	return nil
}

func (r *SpotDynamoRepository) TotalCount(ctx context.Context) (int, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *SpotDynamoRepository) AvailableCount(ctx context.Context) (int, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		Select:           types.SelectCount,
		FilterExpression: aws.String("available = :available"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func fromParkingSpotItem(it parkingSpotItem) entities.ParkingSpot {
	return entities.ParkingSpot{
		ID:        it.ID,
		Category:  entities.VehicleCategory(it.Category),
		Available: it.Available,
	}
}
