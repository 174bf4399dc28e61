package interfaces

import (
	"context"

	"sitebill/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The settlement_bucket attribute keeps at most one payment per
// (subscription, year, month); manual-pay read-modify-writes on the same
// bucket must be serialized by the caller.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListBySubscriptionID(ctx context.Context, subscriptionID string) ([]entities.Payment, error)
	DeleteBySubscriptionID(ctx context.Context, subscriptionID string) error
}
