package routes

import (
	"entregaswoo/internal/adapter/http/handlers"
	"entregaswoo/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathStores       = "/stores"
	PathUsers        = "/users"
	PathAssociations = "/associations"
)

func addDirectoryRoutes(rg *gin.RouterGroup, directoryHandler *handlers.DirectoryHandler) {
	admin := handlers.RequireLevel(entities.RoleAdmin.Level())

	stores := rg.Group(PathStores, admin)
	{
		stores.GET("", directoryHandler.ListStores)
		stores.POST("", directoryHandler.CreateStore)
		stores.PUT("/:id", directoryHandler.UpdateStore)
	}

	users := rg.Group(PathUsers, admin)
	{
		users.GET("/pending", directoryHandler.ListPendingUsers)
		users.DELETE("/:uid", directoryHandler.DeleteUser)
	}

	associations := rg.Group(PathAssociations, admin)
	{
		associations.POST("", directoryHandler.AssociateManager)
	}
}
