package repository

import (
	"context"
	"time"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionsTableName    = "transactions"
	transactionsExternalIDIndex     = "external_id-index"
	transactionsIdempotencyKeyIndex = "idempotency_key-index"
)

// Amount is stored as a decimal string; DynamoDB number types round-trip
// through float64 in the SDK and money never goes through float64 here.
type transactionItem struct {
	ID              string            `dynamodbav:"id"`
	Protocol        string            `dynamodbav:"protocol"`
	GatewayConfigID string            `dynamodbav:"gateway_config_id"`
	EntityType      string            `dynamodbav:"entity_type"`
	EntityID        string            `dynamodbav:"entity_id"`
	AthleteID       string            `dynamodbav:"athlete_id,omitempty"`
	Amount          string            `dynamodbav:"amount"`
	Currency        string            `dynamodbav:"currency"`
	PaymentMethod   string            `dynamodbav:"payment_method"`
	Description     string            `dynamodbav:"description,omitempty"`
	Status          string            `dynamodbav:"status"`
	ExternalID      string            `dynamodbav:"external_id,omitempty"`
	PaymentURL      string            `dynamodbav:"payment_url,omitempty"`
	IdempotencyKey  string            `dynamodbav:"idempotency_key,omitempty"`
	Metadata        map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_id-index (PK: external_id)
//   - GSI: idempotency_key-index (PK: idempotency_key)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.Transaction, error) {
	return r.queryOne(ctx, transactionsExternalIDIndex, "external_id = :v", externalID)
}

func (r *TransactionDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Transaction, error) {
	return r.queryOne(ctx, transactionsIdempotencyKeyIndex, "idempotency_key = :v", key)
}

// Update replaces the full item. Writes always flow through the single
// status-application path upstream, so last-writer-wins on the remaining
// attributes is acceptable.
func (r *TransactionDynamoRepository) Update(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) queryOne(ctx context.Context, index, keyCondition, value string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:              tx.ID,
		Protocol:        tx.Protocol,
		GatewayConfigID: tx.GatewayConfigID,
		EntityType:      string(tx.EntityType),
		EntityID:        tx.EntityID,
		AthleteID:       tx.AthleteID,
		Amount:          tx.Amount.String(),
		Currency:        tx.Currency,
		PaymentMethod:   string(tx.PaymentMethod),
		Description:     tx.Description,
		Status:          string(tx.Status),
		ExternalID:      tx.ExternalID,
		PaymentURL:      tx.PaymentURL,
		IdempotencyKey:  tx.IdempotencyKey,
		Metadata:        tx.Metadata,
		CreatedAt:       tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	amount, _ := decimal.NewFromString(it.Amount)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		ID:              it.ID,
		Protocol:        it.Protocol,
		GatewayConfigID: it.GatewayConfigID,
		EntityType:      entities.EntityType(it.EntityType),
		EntityID:        it.EntityID,
		AthleteID:       it.AthleteID,
		Amount:          amount,
		Currency:        it.Currency,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		Description:     it.Description,
		Status:          entities.PaymentStatus(it.Status),
		ExternalID:      it.ExternalID,
		PaymentURL:      it.PaymentURL,
		IdempotencyKey:  it.IdempotencyKey,
		Metadata:        it.Metadata,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
