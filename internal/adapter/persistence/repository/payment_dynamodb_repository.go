package repository

import (
	"context"
	"time"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName  = "payments"
	paymentsSubscriptionIndex = "subscription_id-index"
)

type paymentItem struct {
	ID               string                 `dynamodbav:"id"`
	SubscriptionID   string                 `dynamodbav:"subscription_id"`
	AmountCents      int64                  `dynamodbav:"amount_cents"`
	Status           string                 `dynamodbav:"status"`
	Provider         string                 `dynamodbav:"provider"`
	TransactionID    string                 `dynamodbav:"transaction_id,omitempty"`
	PaidAt           string                 `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string                 `dynamodbav:"created_at"`
	SettlementBucket string                 `dynamodbav:"settlement_bucket"`
	Metadata         map[string]interface{} `dynamodbav:"metadata,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: subscription_id-index (PK: subscription_id)
//
// settlement_bucket is "subscriptionID#YYYY-MM" derived from paid_at (falling
// back to created_at); it is denormalized on every write so a bucket GSI can
// be added without a backfill.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

// Update replaces the stored payment wholesale. Manual-pay recomputes the
// full record, so a conditional put is simpler than a field-by-field update
// expression.
func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListBySubscriptionID(ctx context.Context, subscriptionID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsSubscriptionIndex),
		KeyConditionExpression: aws.String("subscription_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: subscriptionID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) DeleteBySubscriptionID(ctx context.Context, subscriptionID string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsSubscriptionIndex),
		KeyConditionExpression: aws.String("subscription_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: subscriptionID},
		},
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return err
	}

	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:               p.ID,
		SubscriptionID:   p.SubscriptionID,
		AmountCents:      p.AmountCents,
		Status:           string(p.Status),
		Provider:         string(p.Provider),
		TransactionID:    p.TransactionID,
		CreatedAt:        formatTime(p.CreatedAt),
		SettlementBucket: p.SettlementBucket(),
		Metadata:         p.Metadata,
	}
	if p.PaidAt != nil {
		it.PaidAt = formatTime(*p.PaidAt)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:             it.ID,
		SubscriptionID: it.SubscriptionID,
		AmountCents:    it.AmountCents,
		Status:         entities.PaymentStatus(it.Status),
		Provider:       entities.PaymentProvider(it.Provider),
		TransactionID:  it.TransactionID,
		CreatedAt:      parseTime(it.CreatedAt),
		Metadata:       it.Metadata,
	}
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &t
		}
	}
	return p
}
