package repository

import (
	"context"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "plans"

type planItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	PriceCents  int64  `dynamodbav:"price_cents"`
	Periodicity string `dynamodbav:"periodicity"`
	SiteLimit   int    `dynamodbav:"site_limit"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PlanDynamoRepository persists Plan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	it := toPlanItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Plan{}, err
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
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

// First returns any single plan, or a zero value when the table is empty.
func (r *PlanDynamoRepository) First(ctx context.Context) (entities.Plan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Items) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) List(ctx context.Context) ([]entities.Plan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	plans := make([]entities.Plan, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		plans = append(plans, fromPlanItem(it))
	}
	return plans, nil
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Periodicity: string(p.Periodicity),
		SiteLimit:   p.SiteLimit,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		PriceCents:  it.PriceCents,
		Periodicity: entities.PlanPeriodicity(it.Periodicity),
		SiteLimit:   it.SiteLimit,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
