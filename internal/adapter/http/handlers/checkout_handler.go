package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sitebill/internal/adapter/http/dto/request"
	response "sitebill/internal/adapter/http/dto/response"
	"sitebill/internal/usecase"
	"sitebill/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPreferencePayload = pkg.NewDomainErrorSimple("INVALID_PREFERENCE_INPUT", "Invalid preference payload", http.StatusBadRequest)

// CheckoutHandler creates hosted checkout sessions with Mercado Pago.

type CheckoutHandler struct {
	checkout usecase.ICheckoutUseCase
}

func NewCheckoutHandler(checkout usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreatePreference creates a checkout preference and returns its init point
// URL. All body fields are optional; missing ones fall back to the sandbox
// defaults.
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	var payload request.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreferencePayload.HTTPStatus, errInvalidPreferencePayload.ToHTTPError())
		return
	}

	unitPriceCents, err := payload.ResolveUnitPriceCents()
	if err != nil {
		c.JSON(errInvalidPreferencePayload.HTTPStatus, errInvalidPreferencePayload.ToHTTPError())
		return
	}

	initPoint, err := h.checkout.CreatePreference(c.Request.Context(), payload.ResolveTitle(), payload.Quantity, unitPriceCents)
	if err != nil {
		log.Printf("[checkout][handler] create preference failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] preference created")

	c.JSON(http.StatusCreated, response.FromInitPoint(initPoint))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutQuantity), errors.Is(err, usecase.ErrInvalidCheckoutPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
