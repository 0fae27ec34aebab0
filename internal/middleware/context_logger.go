package middleware

import (
	"hr-portal/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request id and
// the acting principal, so service logs can be correlated without every call
// site threading those fields by hand.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		fields := []zap.Field{zap.String("request_id", rid)}
		if p, ok := GetPrincipal(c); ok {
			fields = append(fields,
				zap.String("actor_id", p.ID),
				zap.String("actor_role", p.Role),
			)
		}

		reqLogger := logger.With(fields...)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
