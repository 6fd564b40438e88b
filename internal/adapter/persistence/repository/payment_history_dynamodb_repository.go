package repository

import (
	"context"
	"sort"
	"time"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentHistoryTableName = "payment_history"
	historyTransactionIDIndex      = "transaction_id-index"
)

type paymentHistoryItem struct {
	ID            string `dynamodbav:"id"`
	TransactionID string `dynamodbav:"transaction_id"`
	Status        string `dynamodbav:"status"`
	Description   string `dynamodbav:"description,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PaymentHistoryDynamoRepository persists the append-only audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: transaction_id-index (PK: transaction_id)

type PaymentHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentHistoryRepository = (*PaymentHistoryDynamoRepository)(nil)

func NewPaymentHistoryDynamoRepository(ddb *dynamodb.Client) *PaymentHistoryDynamoRepository {
	return &PaymentHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_HISTORY_TABLE", defaultPaymentHistoryTableName),
	}
}

func (r *PaymentHistoryDynamoRepository) Append(ctx context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
	av, err := attributevalue.MarshalMap(toPaymentHistoryItem(h))
	if err != nil {
		return entities.PaymentHistory{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentHistory{}, err
	}
	return h, nil
}

func (r *PaymentHistoryDynamoRepository) ListByTransactionID(ctx context.Context, transactionID string) ([]entities.PaymentHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyTransactionIDIndex),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentHistoryItem(it))
	}

	// The index does not order by time; callers read the trail oldest first.
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func toPaymentHistoryItem(h entities.PaymentHistory) paymentHistoryItem {
	return paymentHistoryItem{
		ID:            h.ID,
		TransactionID: h.TransactionID,
		Status:        string(h.Status),
		Description:   h.Description,
		CreatedAt:     h.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentHistoryItem(it paymentHistoryItem) entities.PaymentHistory {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentHistory{
		ID:            it.ID,
		TransactionID: it.TransactionID,
		Status:        entities.PaymentStatus(it.Status),
		Description:   it.Description,
		CreatedAt:     createdAt,
	}
}
