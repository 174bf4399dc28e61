package repository

import (
	"context"
	"errors"
	"time"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSitesTableName = "sites"
	sitesUserIDIndex      = "user_id-index"
)

type siteItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	URL       string `dynamodbav:"url"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// SiteDynamoRepository persists Site entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type SiteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteRepository = (*SiteDynamoRepository)(nil)

func NewSiteDynamoRepository(ddb *dynamodb.Client) *SiteDynamoRepository {
	return &SiteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITES_TABLE", defaultSitesTableName),
	}
}

func (r *SiteDynamoRepository) Create(ctx context.Context, s entities.Site) (entities.Site, error) {
	it := toSiteItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Site{}, err
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
		return entities.Site{}, err
	}
	return s, nil
}

func (r *SiteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Site, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Site{}, err
	}
	if len(out.Item) == 0 {
		return entities.Site{}, nil
	}

	var it siteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Site{}, err
	}
	return fromSiteItem(it), nil
}

func (r *SiteDynamoRepository) FirstByUserID(ctx context.Context, userID string) (entities.Site, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sitesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Site{}, err
	}
	if len(out.Items) == 0 {
		return entities.Site{}, nil
	}

	var it siteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Site{}, err
	}
	return fromSiteItem(it), nil
}

func (r *SiteDynamoRepository) List(ctx context.Context) ([]entities.Site, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	sites := make([]entities.Site, 0, len(out.Items))
	for _, raw := range out.Items {
		var it siteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		sites = append(sites, fromSiteItem(it))
	}
	return sites, nil
}

func (r *SiteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Site{}, nil
		}
		return entities.Site{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Site{}, nil
	}

	var it siteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Site{}, err
	}
	return fromSiteItem(it), nil
}

func (r *SiteDynamoRepository) DeleteByUserID(ctx context.Context, userID string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sitesUserIDIndex),
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
		var it siteItem
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

func toSiteItem(s entities.Site) siteItem {
	return siteItem{
		ID:        s.ID,
		UserID:    s.UserID,
		URL:       s.URL,
		Status:    string(s.Status),
		CreatedAt: formatTime(s.CreatedAt),
	}
}

func fromSiteItem(it siteItem) entities.Site {
	return entities.Site{
		ID:        it.ID,
		UserID:    it.UserID,
		URL:       it.URL,
		Status:    entities.SiteStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
