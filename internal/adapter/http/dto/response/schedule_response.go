package response

import (
	"time"

	"sitebill/internal/domain/billing"
)

// SchedulePaymentResponse is one row of the yearly schedule. createdAt
// carries the obligation's due date: the frontend renders the schedule as a
// payment list and sorts on that field.
type SchedulePaymentResponse struct {
	ID          string     `json:"id"`
	AmountCents int64      `json:"amountCents"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	Provider    string     `json:"provider"`
}

type ScheduleResponse struct {
	Payments []SchedulePaymentResponse `json:"payments"`
}

func FromSchedule(obligations []billing.Obligation) ScheduleResponse {
	payments := make([]SchedulePaymentResponse, 0, len(obligations))
	for _, o := range obligations {
		payments = append(payments, SchedulePaymentResponse{
			ID:          o.ID,
			AmountCents: o.AmountCents,
			Status:      string(o.Status),
			PaidAt:      o.PaidAt,
			CreatedAt:   o.DueDate,
			Provider:    string(o.Provider),
		})
	}
	return ScheduleResponse{Payments: payments}
}
