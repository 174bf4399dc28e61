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

var errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)

// PlanHandler handles plan management.

type PlanHandler struct {
	plans usecase.IPlanUseCase
}

func NewPlanHandler(plans usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{plans: plans}
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var payload request.CreatePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	periodicity, err := payload.ResolvePeriodicity()
	if err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), payload.ResolveName(), payload.Description, payload.PriceCents, periodicity, payload.SiteLimit)
	if err != nil {
		log.Printf("[plan][handler] create failed name=%q err=%v", payload.ResolveName(), err)
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[plan][handler] create success plan_id=%s", plan.ID)

	c.JSON(http.StatusCreated, response.FromPlan(plan))
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		log.Printf("[plan][handler] list failed err=%v", err)
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlans(plans))
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanName), errors.Is(err, usecase.ErrInvalidPlanPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
