package interfaces

import (
	"context"
	"time"

	"sitebill/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// GetLatestByUserID resolves the single "current" subscription considered
// per reconciliation: the most recently created one for the user.

type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetLatestByUserID(ctx context.Context, userID string) (entities.Subscription, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error)
	ListByStatuses(ctx context.Context, statuses []entities.SubscriptionStatus) ([]entities.Subscription, error)
	UpdateCurrentPeriodEnd(ctx context.Context, id string, periodEnd time.Time) (entities.Subscription, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
