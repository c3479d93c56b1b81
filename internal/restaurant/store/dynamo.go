package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/entity"
)

// DynamoAPI is the subset of *dynamodb.Client used by DynamoStore.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	dynamodb.QueryAPIClient
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Tables holds the physical table names for each logical collection.
type Tables struct {
	Restaurants string
	Menu        string
	// Orders is recognized in configuration but no endpoint reads it.
	Orders string
}

// DynamoConfig selects the DynamoDB endpoint.
type DynamoConfig struct {
	Region   string
	Endpoint string
}

// NewDynamoClient builds a DynamoDB client from the default AWS credential
// chain. A non-empty Endpoint points the client at e.g. DynamoDB Local.
func NewDynamoClient(ctx context.Context, cfg DynamoConfig) (*dynamodb.Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

type DynamoStore struct {
	client DynamoAPI
	tables Tables
}

func NewDynamoStore(client DynamoAPI, tables Tables) *DynamoStore {
	return &DynamoStore{client: client, tables: tables}
}

func (s *DynamoStore) ScanRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	items := []entity.Restaurant{}

	p := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.tables.Restaurants),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.tables.Restaurants, err)
		}

		var page []entity.Restaurant
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.tables.Restaurants, err)
		}
		items = append(items, page...)
	}

	return items, nil
}

func (s *DynamoStore) GetRestaurant(ctx context.Context, id string) (entity.Restaurant, error) {
	var rec entity.Restaurant
	err := s.getItem(ctx, s.tables.Restaurants, map[string]types.AttributeValue{
		entity.AttrID: &types.AttributeValueMemberS{Value: id},
	}, &rec)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *DynamoStore) QueryMenu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	keyCond := expression.Key(entity.AttrRestaurantID).Equal(expression.Value(restaurantID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build key condition: %w", err)
	}

	items := []entity.MenuItem{}

	p := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tables.Menu),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", s.tables.Menu, err)
		}

		var page []entity.MenuItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.tables.Menu, err)
		}
		items = append(items, page...)
	}

	return items, nil
}

func (s *DynamoStore) GetMenuItem(ctx context.Context, restaurantID, itemID string) (entity.MenuItem, error) {
	var rec entity.MenuItem
	err := s.getItem(ctx, s.tables.Menu, map[string]types.AttributeValue{
		entity.AttrRestaurantID: &types.AttributeValueMemberS{Value: restaurantID},
		entity.AttrID:           &types.AttributeValueMemberS{Value: itemID},
	}, &rec)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// PutRestaurant writes a restaurant record as-is.
func (s *DynamoStore) PutRestaurant(ctx context.Context, r entity.Restaurant) error {
	if r.ID() == "" {
		return errMissingKey
	}
	return s.putItem(ctx, s.tables.Restaurants, r)
}

// PutMenuItem writes a menu item record as-is.
func (s *DynamoStore) PutMenuItem(ctx context.Context, m entity.MenuItem) error {
	if m.RestaurantID() == "" || m.ID() == "" {
		return errMissingKey
	}
	return s.putItem(ctx, s.tables.Menu, m)
}

func (s *DynamoStore) getItem(ctx context.Context, table string, key map[string]types.AttributeValue, out any) error {
	res, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("get %s: %w", table, err)
	}

	if len(res.Item) == 0 {
		return pkgerror.ErrNotFound
	}

	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}

	return nil
}

func (s *DynamoStore) putItem(ctx context.Context, table string, rec map[string]any) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", table, err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put %s: %w", table, err)
	}

	return nil
}
