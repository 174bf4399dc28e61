package billing

import (
	"time"

	"sitebill/internal/domain/entities"
)

// AccountSnapshot is one subscription pre-loaded with its plan and full
// payment history. Snapshots are immutable inputs: the aggregator never
// reaches back into storage.

type AccountSnapshot struct {
	Subscription entities.Subscription
	Plan         *entities.Plan
	Payments     []entities.Payment
}

// Overview is the portfolio financial summary for one calendar month.
//
// PendingCents is derived by subtraction, so ExpectedCents ==
// ReceivedCents + PendingCents holds for every input set.

type Overview struct {
	Month               int   `json:"month"`
	Year                int   `json:"year"`
	ExpectedCents       int64 `json:"total_expected_cents"`
	ReceivedCents       int64 `json:"total_received_cents"`
	PendingCents        int64 `json:"total_pending_cents"`
	ActiveSubscriptions int   `json:"active_subscriptions"`
}

// ComputeOverview aggregates the month of `now` across all given accounts.
//
// Each subscription with a resolvable plan contributes one expected monthly
// charge; it counts as received when any PAID payment settles in the current
// year/month bucket. Accounts without a plan still count toward
// ActiveSubscriptions, which reflects the size of the evaluated input set.
func ComputeOverview(accounts []AccountSnapshot, now time.Time) Overview {
	ov := Overview{
		Month:               int(now.Month()),
		Year:                now.Year(),
		ActiveSubscriptions: len(accounts),
	}

	for _, acct := range accounts {
		if acct.Plan == nil {
			continue
		}

		ov.ExpectedCents += acct.Plan.PriceCents
		if PaidInBucket(acct.Payments, now.Year(), now.Month()) {
			ov.ReceivedCents += acct.Plan.PriceCents
		}
	}

	ov.PendingCents = ov.ExpectedCents - ov.ReceivedCents
	return ov
}

// PaidInBucket reports whether any PAID payment settles in the given
// year/month.
func PaidInBucket(payments []entities.Payment, year int, month time.Month) bool {
	for _, p := range payments {
		if p.Status != entities.PaymentStatusPaid {
			continue
		}
		d := p.SettlementDate()
		if d.Year() == year && d.Month() == month {
			return true
		}
	}
	return false
}
