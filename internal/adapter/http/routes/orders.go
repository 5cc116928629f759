package routes

import (
	"entregaswoo/internal/adapter/http/handlers"
	"entregaswoo/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders         = "/orders"
	PathReconciliation = "/reconciliation"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, reconciliationHandler *handlers.ReconciliationHandler) {
	courier := handlers.RequireLevel(entities.RoleEntregador.Level())
	manager := handlers.RequireLevel(entities.RoleGerente.Level())

	orders := rg.Group(PathOrders)
	{
		orders.GET("", courier, orderHandler.ListPendingOrders)
		orders.GET("/delivered", courier, orderHandler.ListDeliveredOrders)
		orders.POST("/:id/accept", courier, orderHandler.AcceptOrder)
		orders.POST("/:id/deliver", courier, orderHandler.DeliverOrder)
		orders.POST("/:id/revert", manager, orderHandler.RevertOrder)
		orders.PATCH("/:id/freight", manager, reconciliationHandler.UpdateFreight)
	}

	reconciliation := rg.Group(PathReconciliation, manager)
	{
		reconciliation.POST("/validate", reconciliationHandler.ValidateBatch)
		reconciliation.POST("/commit", reconciliationHandler.CommitBatch)
	}
}
