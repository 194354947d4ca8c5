/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	aerrors "github.com/suparena/assignment/errors"
	"github.com/suparena/assignment/registry"
)

const createCondition = "attribute_not_exists(PK)"

// Client is the subset of the DynamoDB API the datastore uses.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB table.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
}

// NewDynamoDBClient initializes a DynamoDB client. Empty keys fall back to the
// default AWS credential chain.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a DynamodbDataStore for T backed by a new client.
func NewDynamodbDataStore[T any](ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName string) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient[T](client, awsDDBTableName), nil
}

// NewWithClient constructs a DynamodbDataStore for T on an existing client.
func NewWithClient[T any](client Client, tableName string) *DynamodbDataStore[T] {
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
	}
}

func indexMapFor[T any]() (map[string]string, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("%w: %s", aerrors.ErrNoIndexMap, reflect.TypeFor[T]())
	}
	return indexMap, nil
}

func keyFor[T any](key string) (map[string]types.AttributeValue, error) {
	indexMap, err := indexMapFor[T]()
	if err != nil {
		return nil, err
	}
	keyMap, err := buildKeyFromExpanded(expandStringKey(indexMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}
	return keyMap, nil
}

// GetOne retrieves a single item using a string key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := keyFor[T](key)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, aerrors.NewNotFoundError(reflect.TypeFor[T]().String(), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores entity, replacing any item with the same key.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	item, err := d.item(entity)
	if err != nil {
		return err
	}

	if _, err := d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Create stores entity only if no item with the same PK exists.
func (d *DynamodbDataStore[T]) Create(ctx context.Context, entity T) error {
	item, err := d.item(entity)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String(createCondition),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return aerrors.NewConditionFailedError("create", createCondition)
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item using a string key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := keyFor[T](key)
	if err != nil {
		return err
	}

	if _, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyMap,
	}); err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// item marshals entity and adds the expanded index-map attributes.
func (d *DynamodbDataStore[T]) item(entity T) (map[string]types.AttributeValue, error) {
	indexMap, err := indexMapFor[T]()
	if err != nil {
		return nil, err
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(indexMap, entity)
	if err != nil {
		return nil, err
	}
	if _, err := buildKeyFromExpanded(expanded); err != nil {
		return nil, aerrors.NewValidationError("key", err.Error())
	}

	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	return av, nil
}
