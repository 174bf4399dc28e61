package response

import "sitebill/internal/domain/billing"

type OverviewResponse struct {
	Month               int   `json:"month"`
	Year                int   `json:"year"`
	TotalExpectedCents  int64 `json:"totalExpectedCents"`
	TotalReceivedCents  int64 `json:"totalReceivedCents"`
	TotalPendingCents   int64 `json:"totalPendingCents"`
	ActiveSubscriptions int   `json:"activeSubscriptions"`
}

func FromOverview(o billing.Overview) OverviewResponse {
	return OverviewResponse{
		Month:               o.Month,
		Year:                o.Year,
		TotalExpectedCents:  o.ExpectedCents,
		TotalReceivedCents:  o.ReceivedCents,
		TotalPendingCents:   o.PendingCents,
		ActiveSubscriptions: o.ActiveSubscriptions,
	}
}
