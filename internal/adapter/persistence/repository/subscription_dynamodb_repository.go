package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsUserIDIndex      = "user_id-index"
)

type subscriptionItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	PlanID           string `dynamodbav:"plan_id"`
	Status           string `dynamodbav:"status"`
	CurrentPeriodEnd string `dynamodbav:"current_period_end"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at,omitempty"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	it := toSubscriptionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Subscription{}, err
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
		return entities.Subscription{}, err
	}
	return s, nil
}

// GetLatestByUserID returns the most recently created subscription of the
// user, or a zero value when the user has none.
func (r *SubscriptionDynamoRepository) GetLatestByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	subs, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}

	var latest entities.Subscription
	for _, sub := range subs {
		if latest.ID == "" || sub.CreatedAt.After(latest.CreatedAt) {
			latest = sub
		}
	}
	return latest, nil
}

func (r *SubscriptionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSubscriptions(out.Items)
}

// ListByStatuses scans for subscriptions whose status matches any of the
// given ones. Backing the portfolio overview, which walks every billable
// subscription, so a Scan is the expected access pattern.
func (r *SubscriptionDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.SubscriptionStatus) ([]entities.Subscription, error) {
	if len(statuses) == 0 {
		return []entities.Subscription{}, nil
	}

	placeholders := make([]string, 0, len(statuses))
	values := make(map[string]types.AttributeValue, len(statuses))
	for i, status := range statuses {
		ph := fmt.Sprintf(":s%d", i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#status IN (" + strings.Join(placeholders, ", ") + ")"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSubscriptions(out.Items)
}

func (r *SubscriptionDynamoRepository) UpdateCurrentPeriodEnd(ctx context.Context, id string, periodEnd time.Time) (entities.Subscription, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #current_period_end = :period_end, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":period_end": &types.AttributeValueMemberS{Value: formatTime(periodEnd)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#current_period_end": "current_period_end",
			"#updated_at":         "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Subscription{}, nil
		}
		return entities.Subscription{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) DeleteByUserID(ctx context.Context, userID string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return err
	}

	for _, raw := range out.Items {
		var it subscriptionItem
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

func unmarshalSubscriptions(raws []map[string]types.AttributeValue) ([]entities.Subscription, error) {
	subs := make([]entities.Subscription, 0, len(raws))
	for _, raw := range raws {
		var it subscriptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		subs = append(subs, fromSubscriptionItem(it))
	}
	return subs, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:               s.ID,
		UserID:           s.UserID,
		PlanID:           s.PlanID,
		Status:           string(s.Status),
		CurrentPeriodEnd: formatTime(s.CurrentPeriodEnd),
		CreatedAt:        formatTime(s.CreatedAt),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		ID:               it.ID,
		UserID:           it.UserID,
		PlanID:           it.PlanID,
		Status:           entities.SubscriptionStatus(it.Status),
		CurrentPeriodEnd: parseTime(it.CurrentPeriodEnd),
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
