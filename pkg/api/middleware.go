package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/tenant"
)

// Request headers carrying the caller identity.
const (
	HeaderTenantID      = "X-Tenant-ID"
	HeaderUserID        = "X-User-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// tenantScope requires X-Tenant-ID on every request and threads the tenant,
// user, and correlation identifiers through the request context. The
// correlation ID is minted when the caller does not supply one and echoed
// back on the response.
func tenantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(HeaderTenantID)
		if tenantID == "" {
			abortWithError(c, http.StatusBadRequest, "X-Tenant-ID header is required")
			return
		}

		correlationID := c.GetHeader(HeaderCorrelationID)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}
		c.Header(HeaderCorrelationID, correlationID)

		scope := tenant.Scope{
			TenantID:      tenantID,
			UserID:        c.GetHeader(HeaderUserID),
			CorrelationID: correlationID,
		}
		c.Request = c.Request.WithContext(tenant.WithScope(c.Request.Context(), scope))
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requestLogger logs one structured line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if scope, ok := tenant.FromContext(c.Request.Context()); ok {
			attrs = append(attrs, "tenant_id", scope.TenantID, "correlation_id", scope.CorrelationID)
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("Request failed", attrs...)
		} else {
			logger.Info("Request handled", attrs...)
		}
	}
}

// scopeFrom extracts the request's tenant scope; tenantScope middleware
// guarantees it is present on all scoped routes.
func scopeFrom(c *gin.Context) tenant.Scope {
	scope, _ := tenant.FromContext(c.Request.Context())
	return scope
}
