package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoService struct {
	Client *dynamodb.Client
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// GetItem retrieves an item from DynamoDB. Returns ErrNotFound when the key
// has no item.
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &tableName,
		Key:            key,
		ConsistentRead: boolPtr(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}

	if output.Item == nil {
		return nil, ErrNotFound
	}

	return output.Item, nil
}

// PutItem marshals and writes an item unconditionally.
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// PutItemIfAbsent writes an item only when no item with the same value for
// keyAttribute exists yet. Returns ErrAlreadyExists when one does.
func (ds *DynamoService) PutItemIfAbsent(ctx context.Context, tableName, keyAttribute string, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	condition := fmt.Sprintf("attribute_not_exists(%s)", keyAttribute)
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &tableName,
		Item:                marshaledItem,
		ConditionExpression: &condition,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// UpdateItem applies an update expression and returns the post-update
// attributes.
func (ds *DynamoService) UpdateItem(
	ctx context.Context,
	tableName string,
	updateExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	return ds.UpdateItemWithCondition(ctx, tableName, updateExpression, "", key, expressionAttributeValues, expressionAttributeNames)
}

// UpdateItemWithCondition applies an update expression guarded by a condition
// expression and returns the post-update attributes. A failed condition is
// reported as ErrConflict so callers can re-read and retry; everything else is
// a hard persistence failure.
func (ds *DynamoService) UpdateItemWithCondition(
	ctx context.Context,
	tableName string,
	updateExpression string,
	conditionExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	return ds.updateItem(ctx, tableName, updateExpression, conditionExpression, key, expressionAttributeValues, expressionAttributeNames, types.ReturnValueAllNew)
}

// UpdateItemWithConditionOld is UpdateItemWithCondition returning the
// pre-update attributes instead, for callers that detect transitions by
// comparing against the previous state.
func (ds *DynamoService) UpdateItemWithConditionOld(
	ctx context.Context,
	tableName string,
	updateExpression string,
	conditionExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	return ds.updateItem(ctx, tableName, updateExpression, conditionExpression, key, expressionAttributeValues, expressionAttributeNames, types.ReturnValueAllOld)
}

func (ds *DynamoService) updateItem(
	ctx context.Context,
	tableName string,
	updateExpression string,
	conditionExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	returnValues types.ReturnValue,
) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, errors.New("update failed: key cannot be empty")
	}
	if updateExpression == "" {
		return nil, errors.New("update failed: updateExpression cannot be empty")
	}

	updateInput := &dynamodb.UpdateItemInput{
		TableName:                 &tableName,
		Key:                       key,
		UpdateExpression:          &updateExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		ReturnValues:              returnValues,
	}
	if conditionExpression != "" {
		updateInput.ConditionExpression = &conditionExpression
	}

	output, err := ds.Client.UpdateItem(ctx, updateInput)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrConflict
		}
		log.Printf("❌ Failed to update item in table '%s': %v", tableName, err)
		return nil, fmt.Errorf("failed to update item in table '%s': %w", tableName, err)
	}

	return output.Attributes, nil
}

// TransactUpdate describes one update inside a write transaction.
type TransactUpdate struct {
	TableName                 string
	Key                       map[string]types.AttributeValue
	UpdateExpression          string
	ConditionExpression       string
	ExpressionAttributeValues map[string]types.AttributeValue
}

// TransactWriteUpdates executes the given updates as a single all-or-nothing
// transaction. A cancelled transaction (failed condition, conflicting
// concurrent transaction) is reported as ErrConflict.
func (ds *DynamoService) TransactWriteUpdates(ctx context.Context, updates ...TransactUpdate) error {
	items := make([]types.TransactWriteItem, 0, len(updates))
	for i := range updates {
		u := updates[i]
		update := &types.Update{
			TableName:                 &u.TableName,
			Key:                       u.Key,
			UpdateExpression:          &u.UpdateExpression,
			ExpressionAttributeValues: u.ExpressionAttributeValues,
		}
		if u.ConditionExpression != "" {
			update.ConditionExpression = &u.ConditionExpression
		}
		items = append(items, types.TransactWriteItem{Update: update})
	}

	_, err := ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return ErrConflict
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// ScanItems performs a filtered full scan and returns the raw items.
func (ds *DynamoService) ScanItems(
	ctx context.Context,
	tableName string,
	filterExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) ([]map[string]types.AttributeValue, error) {
	scanInput := &dynamodb.ScanInput{
		TableName:                 &tableName,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
	}
	if filterExpression != "" {
		scanInput.FilterExpression = &filterExpression
	}

	output, err := ds.Client.Scan(ctx, scanInput)
	if err != nil {
		return nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}

	return output.Items, nil
}

func boolPtr(b bool) *bool { return &b }
