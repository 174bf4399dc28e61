package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "sitebill/internal/adapter/http/dto/request"
	response "sitebill/internal/adapter/http/dto/response"
	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase"
	"sitebill/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
	errInvalidManualPay     = pkg.NewDomainErrorSimple("INVALID_MANUAL_PAY_INPUT", "Invalid manual payment payload", http.StatusBadRequest)
	errInvalidDueDateInput  = pkg.NewDomainErrorSimple("INVALID_DUE_DATE_INPUT", "Invalid due date payload", http.StatusBadRequest)
)

// AdminHandler handles the administrative billing surface: client accounts,
// yearly schedules, manual settlement and the portfolio overview.

type AdminHandler struct {
	clients        usecase.IClientUseCase
	reconciliation usecase.IReconciliationUseCase
}

func NewAdminHandler(clients usecase.IClientUseCase, reconciliation usecase.IReconciliationUseCase) *AdminHandler {
	return &AdminHandler{clients: clients, reconciliation: reconciliation}
}

// RegisterClient creates the user (when new), its site and, when a first due
// date is provided, an initial subscription.
func (h *AdminHandler) RegisterClient(c *gin.Context) {
	var payload request.RegisterClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	log.Printf("[admin][handler] register client email=%s", payload.ResolveEmail())
	registered, err := h.clients.Register(c.Request.Context(), usecase.RegisterClientInput{
		Name:         payload.Name,
		Email:        payload.ResolveEmail(),
		SiteURL:      payload.ResolveSiteURL(),
		PlanName:     payload.PlanName,
		FirstDueDate: payload.FirstDueDate,
	})
	if err != nil {
		log.Printf("[admin][handler] register client failed email=%s err=%v", payload.ResolveEmail(), err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegisteredClient(registered))
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	entries, err := h.clients.List(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] list clients failed err=%v", err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientEntries(entries))
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	userID := c.Param("user_id")
	log.Printf("[admin][handler] delete client user_id=%s", userID)

	if err := h.clients.Delete(c.Request.Context(), userID); err != nil {
		log.Printf("[admin][handler] delete client failed user_id=%s err=%v", userID, err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateDueDate moves the anchor due date of the client's subscription,
// creating one on the default plan when the client has none.
func (h *AdminHandler) UpdateDueDate(c *gin.Context) {
	userID := c.Param("user_id")

	var payload request.DueDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDueDateInput.HTTPStatus, errInvalidDueDateInput.ToHTTPError())
		return
	}

	sub, err := h.clients.UpdateDueDate(c.Request.Context(), userID, payload.ResolveDueDate())
	if err != nil {
		log.Printf("[admin][handler] due-date update failed user_id=%s err=%v", userID, err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] due-date updated user_id=%s subscription_id=%s", userID, sub.ID)

	c.JSON(http.StatusOK, response.FromSubscriptionDueDate(sub))
}

// ClientPayments returns the twelve monthly obligations of the client's
// schedule year. An optional ?year= query overrides the anchor year.
func (h *AdminHandler) ClientPayments(c *gin.Context) {
	userID := c.Param("user_id")

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_YEAR", "Invalid year", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		year = parsed
	}

	schedule, err := h.reconciliation.ClientPayments(c.Request.Context(), userID, year)
	if err != nil {
		log.Printf("[admin][handler] client payments failed user_id=%s err=%v", userID, err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSchedule(schedule))
}

// ManualPay records an administrator settlement for one month.
func (h *AdminHandler) ManualPay(c *gin.Context) {
	userID := c.Param("user_id")

	var payload request.ManualPayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidManualPay.HTTPStatus, errInvalidManualPay.ToHTTPError())
		return
	}

	payment, err := h.reconciliation.ManualPay(c.Request.Context(), userID, payload.ResolveReferenceDate(), payload.ResolvePaidAt())
	if err != nil {
		log.Printf("[admin][handler] manual-pay failed user_id=%s reference_date=%s err=%v", userID, payload.ResolveReferenceDate(), err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] manual-pay success user_id=%s payment_id=%s", userID, payment.ID)

	c.JSON(http.StatusCreated, response.FromManualPay(payment))
}

func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.reconciliation.Overview(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] overview failed err=%v", err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOverview(overview))
}

func (h *AdminHandler) BlockSite(c *gin.Context) {
	h.updateSiteStatus(c, h.clients.BlockSite)
}

func (h *AdminHandler) UnblockSite(c *gin.Context) {
	h.updateSiteStatus(c, h.clients.UnblockSite)
}

func (h *AdminHandler) updateSiteStatus(c *gin.Context, update func(ctx context.Context, siteID string) (entities.Site, error)) {
	siteID := c.Param("id")

	site, err := update(c.Request.Context(), siteID)
	if err != nil {
		log.Printf("[admin][handler] site status update failed site_id=%s err=%v", siteID, err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] site status updated site_id=%s status=%s", site.ID, site.Status)

	c.JSON(http.StatusOK, response.FromSite(site))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingEmailOrSiteURL),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidSiteID),
		errors.Is(err, usecase.ErrInvalidDueDate),
		errors.Is(err, usecase.ErrInvalidReferenceDate),
		errors.Is(err, usecase.ErrInvalidPaidAt):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSiteNotFound):
		return pkg.NewDomainErrorSimple("SITE_NOT_FOUND", "Site not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found for this client", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
