package entities

import "time"

// SubscriptionStatus is the lifecycle state of a subscription.
//
// ACTIVE, PENDING and SUSPENDED subscriptions are all considered billable by
// the financial overview; CANCELED is terminal.

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPending   SubscriptionStatus = "PENDING"
	SubscriptionStatusSuspended SubscriptionStatus = "SUSPENDED"
	SubscriptionStatusCanceled  SubscriptionStatus = "CANCELED"
)

// BillableStatuses are the statuses included in portfolio reconciliation.
var BillableStatuses = []SubscriptionStatus{
	SubscriptionStatusActive,
	SubscriptionStatusPending,
	SubscriptionStatusSuspended,
}

// Subscription links a user to a plan.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// CurrentPeriodEnd is the anchor due date: its day-of-month seeds the due
// date of every monthly charge derived for this subscription. A user may
// accumulate several subscriptions over time; reconciliation always takes
// the most recently created one.

type Subscription struct {
	ID               string             `json:"id"`
	UserID           string             `json:"user_id"`
	PlanID           string             `json:"plan_id"`
	Status           SubscriptionStatus `json:"status"`
	CurrentPeriodEnd time.Time          `json:"current_period_end"`
	CreatedAt        time.Time          `json:"created_at"`
}
