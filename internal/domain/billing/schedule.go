package billing

import (
	"fmt"
	"sort"
	"time"

	"sitebill/internal/domain/entities"
)

// ObligationStatus is the derived settlement state of a monthly charge.

type ObligationStatus string

const (
	ObligationStatusPaid    ObligationStatus = "PAID"
	ObligationStatusPending ObligationStatus = "PENDING"
	ObligationStatusLate    ObligationStatus = "LATE"
)

// Obligation is a derived monthly charge (mensalidade). It is computed on
// demand from the subscription, its plan and its payment history, and is
// never persisted: status is recomputed fresh on every evaluation, so a late
// month flips to PAID as soon as a matching payment lands.

type Obligation struct {
	ID          string                   `json:"id"`
	DueDate     time.Time                `json:"due_date"`
	AmountCents int64                    `json:"amount_cents"`
	Status      ObligationStatus         `json:"status"`
	PaymentID   string                   `json:"payment_id,omitempty"`
	PaidAt      *time.Time               `json:"paid_at,omitempty"`
	Provider    entities.PaymentProvider `json:"provider"`
}

// BuildSchedule expands a subscription into the twelve monthly obligations
// of the given calendar year.
//
// The due day of every month is the anchor's day-of-month
// (subscription.CurrentPeriodEnd), clamped to the last valid day of shorter
// months so an anchor on the 31st never overflows February into March.
//
// Each obligation is matched against the payment whose settlement date
// (PaidAt, falling back to CreatedAt) lands in the same year/month bucket;
// ties resolve to the first payment in input order. Status is PAID when the
// matched payment is PAID, LATE when unpaid and due before now, PENDING
// otherwise.
//
// A zero year defaults to the anchor's year. A nil plan yields an empty
// schedule: callers display that as "no schedule", not as an error.
func BuildSchedule(sub entities.Subscription, plan *entities.Plan, payments []entities.Payment, year int, now time.Time) []Obligation {
	if plan == nil {
		return nil
	}
	if year == 0 {
		year = sub.CurrentPeriodEnd.Year()
	}

	anchorDay := sub.CurrentPeriodEnd.Day()
	schedule := make([]Obligation, 0, 12)

	for month := time.January; month <= time.December; month++ {
		day := anchorDay
		if last := DaysInMonth(year, month); day > last {
			day = last
		}
		dueDate := AtNoon(year, month, day)

		matched := FindInBucket(payments, year, month)

		o := Obligation{
			ID:          fmt.Sprintf("%s-%04d-%02d", sub.ID, year, int(month)),
			DueDate:     dueDate,
			AmountCents: plan.PriceCents,
			Status:      ObligationStatusPending,
			Provider:    entities.PaymentProviderSchedule,
		}
		if matched != nil {
			o.ID = matched.ID
			o.PaymentID = matched.ID
			o.PaidAt = matched.PaidAt
			o.Provider = matched.Provider
		}

		switch {
		case matched != nil && matched.Status == entities.PaymentStatusPaid:
			o.Status = ObligationStatusPaid
		case dueDate.Before(now):
			o.Status = ObligationStatusLate
		}

		schedule = append(schedule, o)
	}

	sort.Slice(schedule, func(i, j int) bool {
		return schedule[i].DueDate.Before(schedule[j].DueDate)
	})
	return schedule
}

// FindInBucket returns the first payment (in input order) whose settlement
// date falls in the given year/month, or nil when the bucket is empty.
func FindInBucket(payments []entities.Payment, year int, month time.Month) *entities.Payment {
	for i := range payments {
		d := payments[i].SettlementDate()
		if d.Year() == year && d.Month() == month {
			return &payments[i]
		}
	}
	return nil
}
