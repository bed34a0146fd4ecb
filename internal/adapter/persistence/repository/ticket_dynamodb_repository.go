package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"parkhub/internal/domain/entities"
	"parkhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTicketsTableName = "tickets"
	ticketsVehicleIndex     = "vehicle_reg_number-index"
)

type ticketItem struct {
	ID               string `dynamodbav:"id"`
	SpotID           int    `dynamodbav:"spot_id"`
	SpotCategory     string `dynamodbav:"spot_category"`
	VehicleRegNumber string `dynamodbav:"vehicle_reg_number"`
	EntryTime        string `dynamodbav:"entry_time"`
	ExitTime         string `dynamodbav:"exit_time,omitempty"`
	Price            string `dynamodbav:"price"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_reg_number-index (PK: vehicle_reg_number)
//
// Open tickets are stored without an exit_time attribute; closing a ticket
// is conditional on that attribute being absent, so a ticket settles once.

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Insert(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	it := toTicketItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Ticket{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) FindByVehicle(ctx context.Context, vehicleRegNumber string) (entities.Ticket, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ticketsVehicleIndex),
		KeyConditionExpression: aws.String("vehicle_reg_number = :reg"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reg": &types.AttributeValueMemberS{Value: vehicleRegNumber},
		},
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Items) == 0 {
		return entities.Ticket{}, nil
	}

	// A vehicle has at most one open ticket; prefer it. When every ticket is
	// settled, fall back to the most recent entry.
	var latest ticketItem
	var latestEntry time.Time
	for _, raw := range out.Items {
		var it ticketItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Ticket{}, err
		}
		if it.ExitTime == "" {
			return fromTicketItem(it), nil
		}
		entry, _ := time.Parse(time.RFC3339Nano, it.EntryTime)
		if latest.ID == "" || entry.After(latestEntry) {
			latest = it
			latestEntry = entry
		}
	}
	return fromTicketItem(latest), nil
}

func (r *TicketDynamoRepository) UpdateEntryTime(ctx context.Context, id string, entryTime time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #entry_time = :entry_time"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entry_time": &types.AttributeValueMemberS{Value: entryTime.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#entry_time": "entry_time",
		},
	})
	return err
}

func (r *TicketDynamoRepository) UpdateOnExit(ctx context.Context, id string, exitTime time.Time, price float64) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#exit_time)"),
		UpdateExpression:    aws.String("SET #exit_time = :exit_time, #price = :price"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":exit_time": &types.AttributeValueMemberS{Value: exitTime.UTC().Format(time.RFC3339Nano)},
			":price":     &types.AttributeValueMemberS{Value: floatToString(price)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#exit_time": "exit_time",
			"#price":     "price",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *TicketDynamoRepository) CountByVehicle(ctx context.Context, vehicleRegNumber string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ticketsVehicleIndex),
		KeyConditionExpression: aws.String("vehicle_reg_number = :reg"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reg": &types.AttributeValueMemberS{Value: vehicleRegNumber},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *TicketDynamoRepository) TotalCount(ctx context.Context) (int, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	it := ticketItem{
		ID:               t.ID,
		SpotID:           t.SpotID,
		SpotCategory:     string(t.SpotCategory),
		VehicleRegNumber: t.VehicleRegNumber,
		EntryTime:        t.EntryTime.UTC().Format(time.RFC3339Nano),
		Price:            floatToString(t.Price),
	}
	if t.ExitTime != nil {
		it.ExitTime = t.ExitTime.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromTicketItem(it ticketItem) entities.Ticket {
	entryTime, _ := time.Parse(time.RFC3339Nano, it.EntryTime)
	price, _ := strconv.ParseFloat(it.Price, 64)
	t := entities.Ticket{
		ID:               it.ID,
		SpotID:           it.SpotID,
		SpotCategory:     entities.VehicleCategory(it.SpotCategory),
		VehicleRegNumber: it.VehicleRegNumber,
		EntryTime:        entryTime,
		Price:            price,
	}
	if it.ExitTime != "" {
		exitTime, _ := time.Parse(time.RFC3339Nano, it.ExitTime)
		t.ExitTime = &exitTime
	}
	return t
}
