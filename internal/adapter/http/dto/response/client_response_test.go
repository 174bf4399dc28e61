package response

import (
	"testing"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase"
)

func TestFromClientEntries(t *testing.T) {
	entries := []usecase.ClientListEntry{
		{
			User: entities.User{ID: "user-1", Name: "Maria", Email: "maria@x.com"},
			Site: entities.Site{ID: "site-1", URL: "https://a.com", Status: entities.SiteStatusActive},
		},
		{
			User: entities.User{ID: "user-2", Email: "b@x.com"},
			Site: entities.Site{ID: "site-2", URL: "https://b.com", Status: entities.SiteStatusSuspended},
		},
	}

	resp := FromClientEntries(entries)
	if len(resp.Clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(resp.Clients))
	}
	if resp.Clients[0].Status != "ativo" {
		t.Fatalf("expected ativo, got %q", resp.Clients[0].Status)
	}
	if resp.Clients[1].Status != "bloqueado" {
		t.Fatalf("expected bloqueado, got %q", resp.Clients[1].Status)
	}
	if resp.Clients[1].Name != "b@x.com" {
		t.Fatalf("nameless user must fall back to email, got %q", resp.Clients[1].Name)
	}
}

func TestFromClientSummary_LastPayment(t *testing.T) {
	summary := usecase.ClientSummary{
		PlanName:           "Plano Mensal",
		PriceCents:         10000,
		SubscriptionStatus: entities.SubscriptionStatusActive,
		SiteURL:            "https://a.com",
	}

	resp := FromClientSummary(summary)
	if resp.LastPayment != nil {
		t.Fatalf("expected null lastPayment, got %+v", resp.LastPayment)
	}

	summary.LastPayment = &entities.Payment{AmountCents: 10000, Status: entities.PaymentStatusPaid}
	resp = FromClientSummary(summary)
	if resp.LastPayment == nil || resp.LastPayment.AmountCents != 10000 {
		t.Fatalf("unexpected lastPayment: %+v", resp.LastPayment)
	}
}
