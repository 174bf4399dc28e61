package handlers

import (
	"errors"
	"log"
	"net/http"

	response "sitebill/internal/adapter/http/dto/response"
	"sitebill/internal/usecase"
	"sitebill/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client-facing dashboard endpoints.

type ClientHandler struct {
	clients usecase.IClientUseCase
}

func NewClientHandler(clients usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// Summary returns the client's plan, subscription state, site and last
// payment for the dashboard.
func (h *ClientHandler) Summary(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.Query("user_id")
	}

	summary, err := h.clients.Summary(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[client][handler] summary failed user_id=%s err=%v", userID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientSummary(summary))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
