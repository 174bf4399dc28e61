package response

import (
	"time"

	"sitebill/internal/domain/entities"
)

type PaymentResponse struct {
	ID             string                 `json:"id"`
	SubscriptionID string                 `json:"subscriptionId"`
	AmountCents    int64                  `json:"amountCents"`
	Status         string                 `json:"status"`
	Provider       string                 `json:"provider"`
	TransactionID  string                 `json:"transactionId,omitempty"`
	PaidAt         *time.Time             `json:"paidAt"`
	CreatedAt      time.Time              `json:"createdAt"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// ManualPayResponse wraps the payment the way the admin frontend expects.
type ManualPayResponse struct {
	Payment PaymentResponse `json:"payment"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		SubscriptionID: p.SubscriptionID,
		AmountCents:    p.AmountCents,
		Status:         string(p.Status),
		Provider:       string(p.Provider),
		TransactionID:  p.TransactionID,
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
		Metadata:       p.Metadata,
	}
}

func FromManualPay(p entities.Payment) ManualPayResponse {
	return ManualPayResponse{Payment: FromPayment(p)}
}
