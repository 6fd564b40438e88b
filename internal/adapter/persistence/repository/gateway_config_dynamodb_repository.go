package repository

import (
	"context"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewayConfigsTableName = "gateway_configs"

type gatewayConfigItem struct {
	ID             string            `dynamodbav:"id"`
	Provider       string            `dynamodbav:"provider"`
	Credentials    map[string]string `dynamodbav:"credentials"`
	Sandbox        bool              `dynamodbav:"sandbox"`
	Priority       int               `dynamodbav:"priority"`
	Active         bool              `dynamodbav:"active"`
	EntityTypes    []string          `dynamodbav:"entity_types,omitempty"`
	AllowedMethods []string          `dynamodbav:"allowed_methods,omitempty"`
}

// GatewayConfigDynamoRepository reads gateway configurations from DynamoDB.
// The table is tiny (a handful of rows) and operator-managed, so ListActive
// scans with a filter instead of maintaining an index.
//
// Table requirements:
//   - PK: id (string)

type GatewayConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb *dynamodb.Client) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_CONFIGS_TABLE", defaultGatewayConfigsTableName),
	}
}

func (r *GatewayConfigDynamoRepository) GetByID(ctx context.Context, id string) (entities.GatewayConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayConfig{}, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayConfig{}, err
	}
	return fromGatewayConfigItem(it), nil
}

func (r *GatewayConfigDynamoRepository) ListActive(ctx context.Context) ([]entities.GatewayConfig, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	configs := make([]entities.GatewayConfig, 0, len(out.Items))
	for _, raw := range out.Items {
		var it gatewayConfigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		configs = append(configs, fromGatewayConfigItem(it))
	}
	return configs, nil
}

func fromGatewayConfigItem(it gatewayConfigItem) entities.GatewayConfig {
	entityTypes := make([]entities.EntityType, 0, len(it.EntityTypes))
	for _, v := range it.EntityTypes {
		entityTypes = append(entityTypes, entities.EntityType(v))
	}
	methods := make([]entities.PaymentMethod, 0, len(it.AllowedMethods))
	for _, v := range it.AllowedMethods {
		methods = append(methods, entities.PaymentMethod(v))
	}
	return entities.GatewayConfig{
		ID:             it.ID,
		Provider:       it.Provider,
		Credentials:    it.Credentials,
		Sandbox:        it.Sandbox,
		Priority:       it.Priority,
		Active:         it.Active,
		EntityTypes:    entityTypes,
		AllowedMethods: methods,
	}
}
