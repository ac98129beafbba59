package middleware

import (
	"net/http"
	"strings"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/pkg"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// Principal reads the identity headers set by the gateway in front of this
// service and stores the resulting principal in the request context.
// Verification of the identity itself happens upstream; an absent subject
// yields an anonymous principal, which individual routes may still accept
// (guest checkout).
//
// Headers:
//   - X-Subject-Id:   the authenticated subject (empty for guests)
//   - X-Subject-Role: "admin" or "client" (defaults to client)
func Principal() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.RoleClient
		if strings.EqualFold(strings.TrimSpace(c.GetHeader("X-Subject-Role")), string(entities.RoleAdmin)) {
			role = entities.RoleAdmin
		}
		c.Set(principalContextKey, entities.Principal{
			SubjectID: strings.TrimSpace(c.GetHeader("X-Subject-Id")),
			Role:      role,
		})
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request carries no subject.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p.SubjectID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by the Principal middleware, or
// an anonymous client principal when the middleware did not run.
func PrincipalFrom(c *gin.Context) entities.Principal {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return entities.Principal{Role: entities.RoleClient}
	}
	p, ok := v.(entities.Principal)
	if !ok {
		return entities.Principal{Role: entities.RoleClient}
	}
	return p
}
