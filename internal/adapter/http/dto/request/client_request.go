package request

import "strings"

// RegisterClientRequest is the admin client registration payload. Email and
// siteUrl are mandatory; firstDueDate, when present, seeds the initial
// subscription anchor.
type RegisterClientRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"required"`
	SiteURL      string `json:"siteUrl" binding:"required"`
	PlanName     string `json:"planName"`
	FirstDueDate string `json:"firstDueDate"`
}

func (r RegisterClientRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

func (r RegisterClientRequest) ResolveSiteURL() string {
	return strings.TrimSpace(r.SiteURL)
}

type DueDateRequest struct {
	DueDate string `json:"dueDate" binding:"required"`
}

func (r DueDateRequest) ResolveDueDate() string {
	return strings.TrimSpace(r.DueDate)
}

// ManualPayRequest marks one monthly obligation as paid. referenceDate picks
// the settlement bucket; paidAt defaults to the current time when omitted.
type ManualPayRequest struct {
	ReferenceDate string `json:"referenceDate" binding:"required"`
	PaidAt        string `json:"paidAt"`
}

func (r ManualPayRequest) ResolveReferenceDate() string {
	return strings.TrimSpace(r.ReferenceDate)
}

func (r ManualPayRequest) ResolvePaidAt() string {
	return strings.TrimSpace(r.PaidAt)
}
