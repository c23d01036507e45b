package middleware

import (
	stderrors "errors"
	"strings"

	"movie-dialogue-api/backend/pkg/errors"
	"movie-dialogue-api/backend/pkg/jwt"
	"movie-dialogue-api/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequireScope checks that the request carries a bearer token granting scope
// and stores its claims in the context
func RequireScope(jwtService *jwt.Service, scope string, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if header == "" || !found || token == "" {
			_ = c.Error(errors.NewUnauthorizedError(errors.CodeUnauthorized, "A bearer token is required"))
			c.Abort()
			return
		}

		claims, err := jwtService.Authorize(token, scope)
		switch {
		case stderrors.Is(err, jwt.ErrMissingScope):
			_ = c.Error(errors.NewForbiddenError(errors.CodeForbidden, "The token does not allow this operation").
				WithDetails(gin.H{"required_scope": scope}))
			c.Abort()
			return
		case err != nil:
			logger.Warn("Invalid write token", "error", err.Error())
			_ = c.Error(errors.NewUnauthorizedError(errors.CodeUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("subject", claims.Subject)

		c.Next()
	}
}
