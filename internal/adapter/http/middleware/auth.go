package middleware

import (
	"net/http"
	"strings"

	"learnhub/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where RequireUser stores the authenticated buyer id.
const ContextUserIDKey = "userID"

// UserIDHeader is set by the upstream auth gateway after session validation.
// Authentication itself is owned by that collaborator; this service only
// trusts the forwarded identity.
const UserIDHeader = "X-User-ID"

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated user", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
