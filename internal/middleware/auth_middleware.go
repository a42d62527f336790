package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/pkg/auth"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextSubjectID = "subjectID"
	ContextRole      = "role"
)

// AuthMiddleware validates the bearer token on protected routes and stores
// the token subject and role on the request context.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
