package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitebill/internal/adapter/http/handlers/mocks"
	"sitebill/internal/domain/billing"
	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase, *mocks.MockIReconciliationUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	clients := mocks.NewMockIClientUseCase(ctrl)
	reconciliation := mocks.NewMockIReconciliationUseCase(ctrl)
	h := NewAdminHandler(clients, reconciliation)

	r := gin.New()
	r.POST("/v1/admin/clients", h.RegisterClient)
	r.GET("/v1/admin/clients", h.ListClients)
	r.DELETE("/v1/admin/clients/:user_id", h.DeleteClient)
	r.PATCH("/v1/admin/clients/:user_id/due-date", h.UpdateDueDate)
	r.GET("/v1/admin/clients/:user_id/payments", h.ClientPayments)
	r.POST("/v1/admin/clients/:user_id/payments/manual-pay", h.ManualPay)
	r.GET("/v1/admin/overview", h.Overview)
	r.POST("/v1/admin/sites/:id/block", h.BlockSite)
	r.POST("/v1/admin/sites/:id/unblock", h.UnblockSite)
	return r, clients, reconciliation
}

func TestAdminHandler_RegisterClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, clients, _ := newAdminRouter(t)

		clients.EXPECT().Register(gomock.Any(), usecase.RegisterClientInput{
			Name:         "Maria",
			Email:        "maria@x.com",
			SiteURL:      "https://a.com",
			FirstDueDate: "05/03/2026",
		}).Return(usecase.RegisteredClient{
			User:     entities.User{ID: "user-1", Name: "Maria", Email: "maria@x.com"},
			Site:     entities.Site{ID: "site-1", URL: "https://a.com", Status: entities.SiteStatusActive},
			PlanName: "Plano Mensal",
		}, nil)

		body := `{"name":"Maria","email":"maria@x.com","siteUrl":"https://a.com","firstDueDate":"05/03/2026"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "user-1" || resp["status"] != "ativo" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing email maps to 400", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		// binding:"required" rejects before the use case is reached
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients", bytes.NewBufferString(`{"siteUrl":"https://a.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, clients, _ := newAdminRouter(t)
		clients.EXPECT().Delete(gomock.Any(), "user-x").Return(usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/clients/user-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success is 204", func(t *testing.T) {
		r, clients, _ := newAdminRouter(t)
		clients.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/clients/user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestAdminHandler_ClientPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid year", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/clients/user-1/payments?year=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("schedule payload", func(t *testing.T) {
		r, _, reconciliation := newAdminRouter(t)

		due := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.Local)
		reconciliation.EXPECT().ClientPayments(gomock.Any(), "user-1", 2026).Return([]billing.Obligation{
			{ID: "sub-1-2026-03", DueDate: due, AmountCents: 10000, Status: billing.ObligationStatusPending, Provider: entities.PaymentProviderSchedule},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/clients/user-1/payments?year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Payments []map[string]any `json:"payments"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Payments) != 1 || resp.Payments[0]["status"] != "PENDING" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty schedule serializes as empty list", func(t *testing.T) {
		r, _, reconciliation := newAdminRouter(t)

		reconciliation.EXPECT().ClientPayments(gomock.Any(), "user-1", 0).Return([]billing.Obligation{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/clients/user-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"payments":[]}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAdminHandler_ManualPay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reference date", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients/user-1/payments/manual-pay", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("subscription not found", func(t *testing.T) {
		r, _, reconciliation := newAdminRouter(t)

		reconciliation.EXPECT().ManualPay(gomock.Any(), "user-1", "05/03/2026", "").Return(entities.Payment{}, usecase.ErrSubscriptionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients/user-1/payments/manual-pay", bytes.NewBufferString(`{"referenceDate":"05/03/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success wraps payment", func(t *testing.T) {
		r, _, reconciliation := newAdminRouter(t)

		paidAt := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.Local)
		reconciliation.EXPECT().ManualPay(gomock.Any(), "user-1", "05/03/2026", "03/03/2026").Return(entities.Payment{
			ID:             "pay-1",
			SubscriptionID: "sub-1",
			AmountCents:    10000,
			Status:         entities.PaymentStatusPaid,
			Provider:       entities.PaymentProviderManual,
			PaidAt:         &paidAt,
		}, nil)

		body := `{"referenceDate":"05/03/2026","paidAt":"03/03/2026"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients/user-1/payments/manual-pay", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp struct {
			Payment map[string]any `json:"payment"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Payment["id"] != "pay-1" || resp.Payment["status"] != "PAID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAdminHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, _, reconciliation := newAdminRouter(t)
	reconciliation.EXPECT().Overview(gomock.Any()).Return(billing.Overview{
		Month:               6,
		Year:                2026,
		ExpectedCents:       200,
		ReceivedCents:       100,
		PendingCents:        100,
		ActiveSubscriptions: 2,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/overview", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["totalPendingCents"] != float64(100) || resp["activeSubscriptions"] != float64(2) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAdminHandler_SiteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("block success", func(t *testing.T) {
		r, clients, _ := newAdminRouter(t)
		clients.EXPECT().BlockSite(gomock.Any(), "site-1").Return(entities.Site{ID: "site-1", Status: entities.SiteStatusSuspended}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/sites/site-1/block", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unblock not found", func(t *testing.T) {
		r, clients, _ := newAdminRouter(t)
		clients.EXPECT().UnblockSite(gomock.Any(), "site-x").Return(entities.Site{}, usecase.ErrSiteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/sites/site-x/unblock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapAdminError(t *testing.T) {
	if got := mapAdminError(usecase.ErrMissingEmailOrSiteURL); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAdminError(usecase.ErrInvalidReferenceDate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAdminError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAdminError(usecase.ErrSubscriptionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAdminError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
