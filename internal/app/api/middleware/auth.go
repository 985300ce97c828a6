package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fitpulse/gymadmin/internal/app/service/auth"
	"github.com/fitpulse/gymadmin/pkg/response"
)

// AuthMiddleware rejects requests without a valid admin bearer token and
// stores the admin id in gin.Context ("admin_id") and the request context.
func AuthMiddleware(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}
		tokenStr := strings.TrimSpace(header[len("bearer "):])

		admin, err := authSvc.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set("admin_id", admin.ID)
		ctx := context.WithValue(c.Request.Context(), "admin_id", admin.ID)
		c.Request = c.Request.WithContext(ctx)

		// enrich the request logger when present
		if l, ok := c.Get("logger"); ok {
			if lg, ok := l.(*zap.SugaredLogger); ok && lg != nil {
				c.Set("logger", lg.With("admin_id", admin.ID))
			}
		}

		c.Next()
	}
}
