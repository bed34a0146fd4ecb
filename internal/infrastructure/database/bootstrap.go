package database

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 30 * time.Second

// EnsureParkingTables creates the parking tables and seeds the facility
// layout when they do not exist yet. Intended for local development against
// DynamoDB Local; in real deployments the tables come from infrastructure
// provisioning and this is a no-op.
//
// Layout env vars:
//   - PARKING_CAR_SPOTS (default: 3)
//   - PARKING_BIKE_SPOTS (default: 2)
func EnsureParkingTables(ctx context.Context, ddb *dynamodb.Client) error {
	spotsTable := getenvDefault("PARKING_SPOTS_TABLE", "parking_spots")
	ticketsTable := getenvDefault("TICKETS_TABLE", "tickets")

	created, err := ensureTable(ctx, ddb, &dynamodb.CreateTableInput{
		TableName: aws.String(spotsTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN},
			{AttributeName: aws.String("category"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String("category-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("category"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return err
	}
	if created {
		log.Printf("[database][bootstrap] created table %s", spotsTable)
	}

	created, err = ensureTable(ctx, ddb, &dynamodb.CreateTableInput{
		TableName: aws.String(ticketsTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("vehicle_reg_number"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String("vehicle_reg_number-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("vehicle_reg_number"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return err
	}
	if created {
		log.Printf("[database][bootstrap] created table %s", ticketsTable)
	}

	return seedParkingSpots(ctx, ddb, spotsTable)
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.CreateTableInput) (bool, error) {
	_, err := ddb.CreateTable(ctx, in)
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			return false, nil
		}
		return false, err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableWaitTimeout); err != nil {
		return false, err
	}
	return true, nil
}

// seedParkingSpots writes the facility layout: car spots first, bike spots
// after, all starting available. Writes are conditional so re-running the
// bootstrap never resets a spot that is currently occupied.
func seedParkingSpots(ctx context.Context, ddb *dynamodb.Client, table string) error {
	carSpots := getenvInt("PARKING_CAR_SPOTS", 3)
	bikeSpots := getenvInt("PARKING_BIKE_SPOTS", 2)

	id := 0
	seed := func(category string, count int) error {
		for i := 0; i < count; i++ {
			id++
			_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(table),
				Item: map[string]types.AttributeValue{
					"id":        &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
					"category":  &types.AttributeValueMemberS{Value: category},
					"available": &types.AttributeValueMemberBOOL{Value: true},
				},
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			})
			if err != nil {
				var cfe *types.ConditionalCheckFailedException
				if errors.As(err, &cfe) {
					continue
				}
				return err
			}
		}
		return nil
	}

	if err := seed("CAR", carSpots); err != nil {
		return err
	}
	if err := seed("BIKE", bikeSpots); err != nil {
		return err
	}
	log.Printf("[database][bootstrap] facility layout ready car_spots=%d bike_spots=%d", carSpots, bikeSpots)
	return nil
}

func getenvInt(key string, def int) int {
	v := getenvDefault(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[database][bootstrap] invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
