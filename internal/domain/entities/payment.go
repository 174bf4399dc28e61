package entities

import (
	"fmt"
	"time"
)

// PaymentStatus represents the settlement outcome of a recorded payment.

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentProvider tags where a payment fact came from.
//
// MANUAL marks an administrator override; SCHEDULE is a synthetic tag used
// for derived (never persisted) schedule entries without a real payment.

type PaymentProvider string

const (
	PaymentProviderMercadoPago PaymentProvider = "MERCADOPAGO"
	PaymentProviderManual      PaymentProvider = "MANUAL"
	PaymentProviderSchedule    PaymentProvider = "SCHEDULE"
)

// Payment is a recorded payment fact persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (subscription_id-index): subscription_id
//   - GSI2 (settlement_bucket-index): settlement_bucket
//
// Payments are never deleted by the billing engine, only superseded by
// status updates. Metadata is free-form; manual overrides merge their
// annotation into it without discarding prior keys.

type Payment struct {
	ID             string                 `json:"id"`
	SubscriptionID string                 `json:"subscription_id"`
	AmountCents    int64                  `json:"amount_cents"`
	Status         PaymentStatus          `json:"status"`
	Provider       PaymentProvider        `json:"provider"`
	TransactionID  string                 `json:"transaction_id,omitempty"`
	PaidAt         *time.Time             `json:"paid_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// SettlementDate is the instant used to bucket this payment into a calendar
// month: PaidAt when present, CreatedAt otherwise.
func (p Payment) SettlementDate() time.Time {
	if p.PaidAt != nil {
		return *p.PaidAt
	}
	return p.CreatedAt
}

// SettlementBucket renders the (subscription, year, month) key used by the
// persistence layer to keep at most one payment per month.
func (p Payment) SettlementBucket() string {
	d := p.SettlementDate()
	return FormatSettlementBucket(p.SubscriptionID, d.Year(), d.Month())
}

func FormatSettlementBucket(subscriptionID string, year int, month time.Month) string {
	return fmt.Sprintf("%s#%04d-%02d", subscriptionID, year, int(month))
}
