package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthResponse is the /health body.
type healthResponse struct {
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	Pool              any       `json:"pool,omitempty"`
	ConnectorsHealthy *bool     `json:"connectors_healthy,omitempty"`
	Warnings          any       `json:"warnings,omitempty"`
	WSConnections     int       `json:"ws_connections"`
}

// healthHandler reports process health: worker pool state, connector probe
// summary, and active warnings. Degraded states return 200 with
// status "degraded"; an unreachable database returns 503.
func (s *Server) healthHandler(c *gin.Context) {
	resp := healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}
	httpStatus := http.StatusOK

	if s.pool != nil {
		health := s.pool.Health()
		resp.Pool = health
		if !health.DBReachable {
			resp.Status = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		} else if !health.IsHealthy {
			resp.Status = "degraded"
		}
	}
	if s.connectorHealth != nil {
		healthy := s.connectorHealth.IsHealthy()
		resp.ConnectorsHealthy = &healthy
		if !healthy && resp.Status == "healthy" {
			resp.Status = "degraded"
		}
	}
	if s.warnings != nil {
		warnings := s.warnings.GetWarnings()
		if len(warnings) > 0 {
			resp.Warnings = warnings
			if resp.Status == "healthy" {
				resp.Status = "degraded"
			}
		}
	}
	if s.connManager != nil {
		resp.WSConnections = s.connManager.ActiveConnections()
	}

	c.JSON(httpStatus, resp)
}
