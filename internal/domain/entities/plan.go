package entities

import "time"

// PlanPeriodicity is the billing cadence of a plan. Only MONTHLY is modeled
// today; the type exists so new cadences don't ripple through signatures.

type PlanPeriodicity string

const (
	PlanPeriodicityMonthly PlanPeriodicity = "MONTHLY"
)

// Plan is a recurring subscription plan persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - PriceCents is the smallest currency unit. No floats anywhere in money
//     paths.

type Plan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PriceCents  int64           `json:"price_cents"`
	Periodicity PlanPeriodicity `json:"periodicity"`
	SiteLimit   int             `json:"site_limit,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
