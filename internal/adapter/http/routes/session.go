package routes

import (
	"entregaswoo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSession = "/session"

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, directoryHandler *handlers.DirectoryHandler) {
	// Any resolved session may read itself; visitante included.
	rg.GET(PathSession, sessionHandler.GetSession)

	// Profile self-edit requires authentication but no role.
	rg.PATCH(PathUsers+"/me", handlers.RequireLevel(0), directoryHandler.UpdateMyProfile)
}
