package billing

import (
	"testing"
	"time"

	"sitebill/internal/domain/entities"
)

func TestComputeOverview_TwoSubscriptionsOnePaid(t *testing.T) {
	now := AtNoon(2026, time.March, 15)
	plan := &entities.Plan{ID: "plan-1", PriceCents: 100}
	paidAt := AtNoon(2026, time.March, 10)

	accounts := []AccountSnapshot{
		{
			Subscription: entities.Subscription{ID: "sub-1", Status: entities.SubscriptionStatusActive},
			Plan:         plan,
			Payments: []entities.Payment{{
				ID:     "pay-1",
				Status: entities.PaymentStatusPaid,
				PaidAt: &paidAt,
			}},
		},
		{
			Subscription: entities.Subscription{ID: "sub-2", Status: entities.SubscriptionStatusActive},
			Plan:         plan,
		},
	}

	ov := ComputeOverview(accounts, now)
	if ov.ExpectedCents != 200 || ov.ReceivedCents != 100 || ov.PendingCents != 100 {
		t.Fatalf("unexpected totals: %+v", ov)
	}
	if ov.ActiveSubscriptions != 2 {
		t.Fatalf("active %d, want 2", ov.ActiveSubscriptions)
	}
	if ov.Month != 3 || ov.Year != 2026 {
		t.Fatalf("unexpected period: %+v", ov)
	}
}

func TestComputeOverview_Invariant(t *testing.T) {
	now := AtNoon(2026, time.May, 1)
	paidThis := AtNoon(2026, time.May, 2)
	paidOther := AtNoon(2026, time.April, 2)

	cases := []struct {
		name     string
		accounts []AccountSnapshot
	}{
		{name: "empty input"},
		{
			name: "plan missing",
			accounts: []AccountSnapshot{
				{Subscription: entities.Subscription{ID: "sub-1"}},
			},
		},
		{
			name: "mixed",
			accounts: []AccountSnapshot{
				{
					Subscription: entities.Subscription{ID: "sub-1"},
					Plan:         &entities.Plan{PriceCents: 10000},
					Payments:     []entities.Payment{{Status: entities.PaymentStatusPaid, PaidAt: &paidThis}},
				},
				{
					Subscription: entities.Subscription{ID: "sub-2"},
					Plan:         &entities.Plan{PriceCents: 2500},
					Payments:     []entities.Payment{{Status: entities.PaymentStatusPaid, PaidAt: &paidOther}},
				},
				{
					Subscription: entities.Subscription{ID: "sub-3"},
					Plan:         &entities.Plan{PriceCents: 990},
					Payments:     []entities.Payment{{Status: entities.PaymentStatusPending, PaidAt: &paidThis}},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ov := ComputeOverview(tc.accounts, now)
			if ov.ExpectedCents != ov.ReceivedCents+ov.PendingCents {
				t.Fatalf("invariant broken: %+v", ov)
			}
			if ov.PendingCents < 0 {
				t.Fatalf("negative pending: %+v", ov)
			}
			if ov.ActiveSubscriptions != len(tc.accounts) {
				t.Fatalf("active %d, want input size %d", ov.ActiveSubscriptions, len(tc.accounts))
			}
		})
	}
}

func TestComputeOverview_PaymentFromAnotherMonthDoesNotCount(t *testing.T) {
	now := AtNoon(2026, time.March, 15)
	lastMonth := AtNoon(2026, time.February, 10)

	accounts := []AccountSnapshot{{
		Subscription: entities.Subscription{ID: "sub-1"},
		Plan:         &entities.Plan{PriceCents: 5000},
		Payments:     []entities.Payment{{Status: entities.PaymentStatusPaid, PaidAt: &lastMonth}},
	}}

	ov := ComputeOverview(accounts, now)
	if ov.ReceivedCents != 0 {
		t.Fatalf("february payment counted in march: %+v", ov)
	}
	if ov.PendingCents != 5000 {
		t.Fatalf("pending %d, want 5000", ov.PendingCents)
	}
}

func TestPaidInBucket_FallsBackToCreatedAt(t *testing.T) {
	payments := []entities.Payment{{
		Status:    entities.PaymentStatusPaid,
		CreatedAt: AtNoon(2026, time.March, 10),
	}}
	if !PaidInBucket(payments, 2026, time.March) {
		t.Fatalf("createdAt fallback must settle the bucket")
	}
	if PaidInBucket(payments, 2026, time.April) {
		t.Fatalf("wrong bucket must not settle")
	}
}
