package interfaces

import (
	"context"

	"sitebill/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for Plan.
//
// Not-found is signaled by a zero-value entity (ID == ""), not by an error.

type IPlanRepository interface {
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	// First returns any existing plan; used by EnsureDefaultPlan.
	First(ctx context.Context) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
}
