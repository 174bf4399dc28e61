package routes

import (
	"sitebill/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans    = "/plans"
	PathClient   = "/client"
	PathAdmin    = "/admin"
	PathPayments = "/payments"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	planHandler *handlers.PlanHandler,
	clientHandler *handlers.ClientHandler,
	adminHandler *handlers.AdminHandler,
	checkoutHandler *handlers.CheckoutHandler,
) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", planHandler.ListPlans)
		plans.POST("", planHandler.CreatePlan)
	}

	client := rg.Group(PathClient)
	{
		client.GET("/summary", clientHandler.Summary)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/clients", adminHandler.RegisterClient)
		admin.GET("/clients", adminHandler.ListClients)
		admin.DELETE("/clients/:user_id", adminHandler.DeleteClient)
		admin.PATCH("/clients/:user_id/due-date", adminHandler.UpdateDueDate)
		admin.GET("/clients/:user_id/payments", adminHandler.ClientPayments)
		admin.POST("/clients/:user_id/payments/manual-pay", adminHandler.ManualPay)
		admin.GET("/overview", adminHandler.Overview)
		admin.POST("/sites/:id/block", adminHandler.BlockSite)
		admin.POST("/sites/:id/unblock", adminHandler.UnblockSite)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/create-preference", checkoutHandler.CreatePreference)
	}
}
