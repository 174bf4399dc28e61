package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitebill/internal/adapter/http/handlers/mocks"
	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		clients := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(clients)

		r := gin.New()
		r.GET("/v1/client/summary", h.Summary)
		return r, clients
	}

	t.Run("missing user id", func(t *testing.T) {
		r, clients := newRouter(t)
		clients.EXPECT().Summary(gomock.Any(), "").Return(usecase.ClientSummary{}, usecase.ErrInvalidUserID)

		req := httptest.NewRequest(http.MethodGet, "/v1/client/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, clients := newRouter(t)

		clients.EXPECT().Summary(gomock.Any(), "user-1").Return(usecase.ClientSummary{
			PlanName:           "Plano Mensal",
			PriceCents:         10000,
			SubscriptionStatus: entities.SubscriptionStatusActive,
			CurrentPeriodEnd:   time.Date(2026, time.July, 5, 12, 0, 0, 0, time.Local),
			SiteURL:            "https://a.com",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/client/summary?userId=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["planName"] != "Plano Mensal" || resp["priceCents"] != float64(10000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := resp["lastPayment"]; !ok {
			t.Fatalf("lastPayment must be present (null) in body: %s", w.Body.String())
		}
	})

	t.Run("snake_case query fallback", func(t *testing.T) {
		r, clients := newRouter(t)
		clients.EXPECT().Summary(gomock.Any(), "user-2").Return(usecase.ClientSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/client/summary?user_id=user-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
