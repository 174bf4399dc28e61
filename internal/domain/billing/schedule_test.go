package billing

import (
	"testing"
	"time"

	"sitebill/internal/domain/entities"
)

func scheduleFixture() (entities.Subscription, *entities.Plan) {
	sub := entities.Subscription{
		ID:               "sub-1",
		UserID:           "user-1",
		PlanID:           "plan-1",
		Status:           entities.SubscriptionStatusActive,
		CurrentPeriodEnd: AtNoon(2026, time.January, 5),
	}
	plan := &entities.Plan{ID: "plan-1", Name: "Plano Mensal", PriceCents: 10000, Periodicity: entities.PlanPeriodicityMonthly}
	return sub, plan
}

func TestBuildSchedule_NilPlanYieldsEmptySchedule(t *testing.T) {
	sub, _ := scheduleFixture()
	if got := BuildSchedule(sub, nil, nil, 2026, AtNoon(2026, time.June, 1)); len(got) != 0 {
		t.Fatalf("expected empty schedule, got %d entries", len(got))
	}
}

func TestBuildSchedule_NoPayments(t *testing.T) {
	sub, plan := scheduleFixture()
	now := AtNoon(2026, time.June, 10)

	schedule := BuildSchedule(sub, plan, nil, 2026, now)
	if len(schedule) != 12 {
		t.Fatalf("expected 12 obligations, got %d", len(schedule))
	}

	for i, o := range schedule {
		if o.AmountCents != plan.PriceCents {
			t.Fatalf("month %d: amount %d, want %d", i+1, o.AmountCents, plan.PriceCents)
		}
		if o.Status == ObligationStatusPaid {
			t.Fatalf("month %d: PAID without any payments", i+1)
		}
		if o.Provider != entities.PaymentProviderSchedule {
			t.Fatalf("month %d: provider %s, want SCHEDULE", i+1, o.Provider)
		}
		want := ObligationStatusPending
		if o.DueDate.Before(now) {
			want = ObligationStatusLate
		}
		if o.Status != want {
			t.Fatalf("month %d (due %v): status %s, want %s", i+1, o.DueDate, o.Status, want)
		}
	}
}

func TestBuildSchedule_MatchesPaymentByBucket(t *testing.T) {
	sub, plan := scheduleFixture()
	paidAt := AtNoon(2026, time.March, 5)
	payments := []entities.Payment{{
		ID:             "pay-march",
		SubscriptionID: sub.ID,
		AmountCents:    10000,
		Status:         entities.PaymentStatusPaid,
		Provider:       entities.PaymentProviderMercadoPago,
		PaidAt:         &paidAt,
		CreatedAt:      AtNoon(2026, time.March, 4),
	}}
	now := AtNoon(2026, time.April, 1)

	schedule := BuildSchedule(sub, plan, payments, 2026, now)
	if len(schedule) != 12 {
		t.Fatalf("expected 12 obligations, got %d", len(schedule))
	}

	march := schedule[2]
	if march.Status != ObligationStatusPaid {
		t.Fatalf("march: status %s, want PAID", march.Status)
	}
	if march.PaymentID != "pay-march" || march.ID != "pay-march" {
		t.Fatalf("march: not linked to the matched payment: %+v", march)
	}
	if march.AmountCents != 10000 {
		t.Fatalf("march: amount %d, want 10000", march.AmountCents)
	}
	if march.Provider != entities.PaymentProviderMercadoPago {
		t.Fatalf("march: provider %s", march.Provider)
	}

	// January and February are due before now and unpaid.
	for _, o := range schedule[:2] {
		if o.Status != ObligationStatusLate {
			t.Fatalf("due %v: status %s, want LATE", o.DueDate, o.Status)
		}
	}
	// Everything after now stays pending.
	for _, o := range schedule[3:] {
		if o.Status != ObligationStatusPending {
			t.Fatalf("due %v: status %s, want PENDING", o.DueDate, o.Status)
		}
	}
}

func TestBuildSchedule_UnpaidPaymentDoesNotSettle(t *testing.T) {
	sub, plan := scheduleFixture()
	payments := []entities.Payment{{
		ID:             "pay-pending",
		SubscriptionID: sub.ID,
		Status:         entities.PaymentStatusPending,
		Provider:       entities.PaymentProviderMercadoPago,
		CreatedAt:      AtNoon(2026, time.February, 5),
	}}
	now := AtNoon(2026, time.March, 1)

	schedule := BuildSchedule(sub, plan, payments, 2026, now)
	feb := schedule[1]
	if feb.Status != ObligationStatusLate {
		t.Fatalf("feb: status %s, want LATE (payment not PAID, due in the past)", feb.Status)
	}
	if feb.PaymentID != "pay-pending" {
		t.Fatalf("feb: should still link the matched payment, got %+v", feb)
	}
}

func TestBuildSchedule_FallsBackToCreatedAt(t *testing.T) {
	sub, plan := scheduleFixture()
	payments := []entities.Payment{{
		ID:             "pay-created",
		SubscriptionID: sub.ID,
		Status:         entities.PaymentStatusPaid,
		Provider:       entities.PaymentProviderManual,
		CreatedAt:      AtNoon(2026, time.May, 20),
	}}

	schedule := BuildSchedule(sub, plan, payments, 2026, AtNoon(2026, time.January, 1))
	if schedule[4].Status != ObligationStatusPaid {
		t.Fatalf("may: status %s, want PAID via createdAt bucket", schedule[4].Status)
	}
}

func TestBuildSchedule_FirstMatchWinsOnBucketTie(t *testing.T) {
	sub, plan := scheduleFixture()
	first := AtNoon(2026, time.March, 3)
	second := AtNoon(2026, time.March, 20)
	payments := []entities.Payment{
		{ID: "pay-a", Status: entities.PaymentStatusFailed, PaidAt: &first, CreatedAt: first},
		{ID: "pay-b", Status: entities.PaymentStatusPaid, PaidAt: &second, CreatedAt: second},
	}

	schedule := BuildSchedule(sub, plan, payments, 2026, AtNoon(2026, time.April, 1))
	march := schedule[2]
	if march.PaymentID != "pay-a" {
		t.Fatalf("march: matched %s, want first payment in input order", march.PaymentID)
	}
	if march.Status != ObligationStatusLate {
		t.Fatalf("march: status %s, want LATE (first match is FAILED)", march.Status)
	}
}

func TestBuildSchedule_ClampsAnchorDayToMonthLength(t *testing.T) {
	sub, plan := scheduleFixture()
	sub.CurrentPeriodEnd = AtNoon(2026, time.January, 31)

	schedule := BuildSchedule(sub, plan, nil, 2026, AtNoon(2026, time.January, 1))

	wantDays := map[time.Month]int{
		time.January:   31,
		time.February:  28,
		time.March:     31,
		time.April:     30,
		time.June:      30,
		time.September: 30,
		time.November:  30,
		time.December:  31,
	}
	for _, o := range schedule {
		want, ok := wantDays[o.DueDate.Month()]
		if !ok {
			continue
		}
		if o.DueDate.Day() != want {
			t.Fatalf("%v: due day %d, want %d", o.DueDate.Month(), o.DueDate.Day(), want)
		}
	}

	// Leap year February keeps the 29th.
	leap := BuildSchedule(sub, plan, nil, 2024, AtNoon(2024, time.January, 1))
	if leap[1].DueDate.Day() != 29 {
		t.Fatalf("leap feb: due day %d, want 29", leap[1].DueDate.Day())
	}
}

func TestBuildSchedule_ZeroYearDefaultsToAnchorYear(t *testing.T) {
	sub, plan := scheduleFixture()
	schedule := BuildSchedule(sub, plan, nil, 0, AtNoon(2026, time.January, 1))
	for _, o := range schedule {
		if o.DueDate.Year() != 2026 {
			t.Fatalf("due %v: expected anchor year 2026", o.DueDate)
		}
	}
}

func TestBuildSchedule_SortedAscending(t *testing.T) {
	sub, plan := scheduleFixture()
	schedule := BuildSchedule(sub, plan, nil, 2026, AtNoon(2026, time.June, 1))
	for i := 1; i < len(schedule); i++ {
		if !schedule[i-1].DueDate.Before(schedule[i].DueDate) {
			t.Fatalf("schedule not ascending at index %d", i)
		}
	}
}
