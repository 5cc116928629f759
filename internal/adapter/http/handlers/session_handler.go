package handlers

import (
	"net/http"

	response "entregaswoo/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the resolved session for client bootstrap.

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GetSession godoc
// @Summary      Resolve the caller's session
// @Description  Returns the role, level and active store associations the middleware resolved from the bearer token. Unauthenticated callers get the visitante session.
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Security     Bearer
// @Router       /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSession(SessionFrom(c)))
}
