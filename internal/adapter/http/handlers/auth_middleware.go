package handlers

import (
	"errors"
	"net/http"
	"strings"

	"entregaswoo/internal/usecase"
	"entregaswoo/pkg"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

var (
	errMissingToken     = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errInsufficientRole = pkg.NewDomainErrorSimple("UNAUTHORIZED_ROLE", "Insufficient role for this resource", http.StatusForbidden)
)

// Authenticate resolves the bearer token into a Session and stores it on
// the gin context. A missing header yields an unauthenticated visitante
// session rather than an error: public level-0 routes still render.
func Authenticate(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidAccessToken) {
				c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
				return
			}
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireLevel gates a route group on the session's numeric role level.
// Runs after Authenticate.
func RequireLevel(min int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if !sess.Authenticated {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if sess.Role.Level() < min {
			c.AbortWithStatusJSON(errInsufficientRole.HTTPStatus, errInsufficientRole.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SessionFrom returns the Session placed on the context by Authenticate.
// Absent middleware it returns the zero (visitante) session.
func SessionFrom(c *gin.Context) usecase.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return usecase.Session{}
	}
	sess, ok := v.(usecase.Session)
	if !ok {
		return usecase.Session{}
	}
	return sess
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
