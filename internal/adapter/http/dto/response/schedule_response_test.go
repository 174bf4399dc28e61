package response

import (
	"testing"
	"time"

	"sitebill/internal/domain/billing"
	"sitebill/internal/domain/entities"
)

func TestFromSchedule(t *testing.T) {
	due := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.Local)
	paidAt := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.Local)

	resp := FromSchedule([]billing.Obligation{
		{
			ID:          "pay-1",
			DueDate:     due,
			AmountCents: 10000,
			Status:      billing.ObligationStatusPaid,
			PaymentID:   "pay-1",
			PaidAt:      &paidAt,
			Provider:    entities.PaymentProviderManual,
		},
		{
			ID:          "sub-1-2026-04",
			DueDate:     due.AddDate(0, 1, 0),
			AmountCents: 10000,
			Status:      billing.ObligationStatusPending,
			Provider:    entities.PaymentProviderSchedule,
		},
	})

	if len(resp.Payments) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Payments))
	}
	first := resp.Payments[0]
	if first.CreatedAt != due {
		t.Fatalf("createdAt must carry the due date, got %v", first.CreatedAt)
	}
	if first.Status != "PAID" || first.PaidAt == nil || !first.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected first row: %+v", first)
	}
	second := resp.Payments[1]
	if second.PaidAt != nil || second.Provider != "SCHEDULE" {
		t.Fatalf("unexpected second row: %+v", second)
	}
}

func TestFromSchedule_Empty(t *testing.T) {
	resp := FromSchedule(nil)
	if resp.Payments == nil {
		t.Fatalf("payments must serialize as [], not null")
	}
	if len(resp.Payments) != 0 {
		t.Fatalf("expected empty, got %d", len(resp.Payments))
	}
}
