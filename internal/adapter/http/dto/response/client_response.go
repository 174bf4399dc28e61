package response

import (
	"time"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase"
)

// Site status travels to the admin frontend as the pt-BR labels it renders.
const (
	siteStatusLabelActive  = "ativo"
	siteStatusLabelBlocked = "bloqueado"
)

type RegisteredClientResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Site   string `json:"site"`
	SiteID string `json:"siteId"`
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

func FromRegisteredClient(rc usecase.RegisteredClient) RegisteredClientResponse {
	return RegisteredClientResponse{
		ID:     rc.User.ID,
		Name:   rc.User.Name,
		Email:  rc.User.Email,
		Site:   rc.Site.URL,
		SiteID: rc.Site.ID,
		Plan:   rc.PlanName,
		Status: siteStatusLabel(rc.Site.Status),
	}
}

type ClientListItemResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Site   string `json:"site"`
	Status string `json:"status"`
	Plan   string `json:"plan"`
	SiteID string `json:"siteId"`
}

type ClientListResponse struct {
	Clients []ClientListItemResponse `json:"clients"`
}

func FromClientEntries(entries []usecase.ClientListEntry) ClientListResponse {
	clients := make([]ClientListItemResponse, 0, len(entries))
	for _, e := range entries {
		name := e.User.Name
		if name == "" {
			name = e.User.Email
		}
		clients = append(clients, ClientListItemResponse{
			ID:     e.User.ID,
			Name:   name,
			Email:  e.User.Email,
			Site:   e.Site.URL,
			Status: siteStatusLabel(e.Site.Status),
			Plan:   "Plano Mensal",
			SiteID: e.Site.ID,
		})
	}
	return ClientListResponse{Clients: clients}
}

type DueDateResponse struct {
	ID               string    `json:"id"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd"`
}

func FromSubscriptionDueDate(s entities.Subscription) DueDateResponse {
	return DueDateResponse{ID: s.ID, CurrentPeriodEnd: s.CurrentPeriodEnd}
}

type SiteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSite(s entities.Site) SiteResponse {
	return SiteResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		URL:       s.URL,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

type LastPaymentResponse struct {
	AmountCents int64      `json:"amountCents"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ClientSummaryResponse struct {
	PlanName           string               `json:"planName"`
	PriceCents         int64                `json:"priceCents"`
	SubscriptionStatus string               `json:"subscriptionStatus"`
	CurrentPeriodEnd   time.Time            `json:"currentPeriodEnd"`
	SiteURL            string               `json:"siteUrl"`
	LastPayment        *LastPaymentResponse `json:"lastPayment"`
}

func FromClientSummary(s usecase.ClientSummary) ClientSummaryResponse {
	resp := ClientSummaryResponse{
		PlanName:           s.PlanName,
		PriceCents:         s.PriceCents,
		SubscriptionStatus: string(s.SubscriptionStatus),
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		SiteURL:            s.SiteURL,
	}
	if s.LastPayment != nil {
		resp.LastPayment = &LastPaymentResponse{
			AmountCents: s.LastPayment.AmountCents,
			Status:      string(s.LastPayment.Status),
			PaidAt:      s.LastPayment.PaidAt,
			CreatedAt:   s.LastPayment.CreatedAt,
		}
	}
	return resp
}

func siteStatusLabel(status entities.SiteStatus) string {
	if status == entities.SiteStatusActive {
		return siteStatusLabelActive
	}
	return siteStatusLabelBlocked
}
