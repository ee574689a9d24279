package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
)

// createConnectorHandler stores a connector definition and, when enabled,
// registers a live instance so new investigations can use it immediately.
func (s *Server) createConnectorHandler(c *gin.Context) {
	scope := scopeFrom(c)

	var def services.ConnectorDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	def.TenantID = scope.TenantID

	created, err := s.connectors.Create(c.Request.Context(), &def)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if s.registry != nil && created.Enabled {
		if _, err := s.registry.Add(c.Request.Context(), created.InstanceConfig()); err != nil {
			// The definition is durable; registration retries on restart.
			s.log.Warn("Failed to register live connector instance",
				"connector_id", created.ID, "tenant_id", created.TenantID, "error", err)
		}
	}
	c.JSON(http.StatusCreated, created)
}

// listConnectorsHandler lists the tenant's connector definitions.
func (s *Server) listConnectorsHandler(c *gin.Context) {
	scope := scopeFrom(c)

	enabledOnly := c.Query("enabled") == "true"
	defs, err := s.connectors.List(c.Request.Context(), scope.TenantID, enabledOnly)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"connectors": defs,
		"count":      len(defs),
	})
}

// getConnectorHandler returns one connector definition.
func (s *Server) getConnectorHandler(c *gin.Context) {
	scope := scopeFrom(c)

	def, err := s.connectors.Get(c.Request.Context(), scope.TenantID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// setConnectorEnabledHandler toggles a connector. Disabling removes the live
// instance; enabling registers one from the stored definition.
func (s *Server) setConnectorEnabledHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.connectors.SetEnabled(c.Request.Context(), scope.TenantID, id, req.Enabled); err != nil {
		mapServiceError(c, err)
		return
	}

	if s.registry != nil {
		if req.Enabled {
			def, err := s.connectors.Get(c.Request.Context(), scope.TenantID, id)
			if err == nil {
				if _, err := s.registry.Add(c.Request.Context(), def.InstanceConfig()); err != nil {
					s.log.Warn("Failed to register live connector instance",
						"connector_id", id, "tenant_id", scope.TenantID, "error", err)
				}
			}
		} else if err := s.registry.Remove(c.Request.Context(), scope.TenantID, id); err != nil {
			s.log.Warn("Failed to remove live connector instance",
				"connector_id", id, "tenant_id", scope.TenantID, "error", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"connector_id": id,
		"enabled":      req.Enabled,
	})
}

// deleteConnectorHandler removes the definition and any live instance.
func (s *Server) deleteConnectorHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	if err := s.connectors.Delete(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}
	if s.registry != nil {
		if err := s.registry.Remove(c.Request.Context(), scope.TenantID, id); err != nil {
			s.log.Warn("Failed to remove live connector instance",
				"connector_id", id, "tenant_id", scope.TenantID, "error", err)
		}
	}
	c.Status(http.StatusNoContent)
}

// connectorHealthHandler reports live probe results for the tenant's
// connectors.
func (s *Server) connectorHealthHandler(c *gin.Context) {
	scope := scopeFrom(c)

	if s.connectorHealth == nil {
		abortWithError(c, http.StatusNotFound, "connector health monitoring is not enabled")
		return
	}
	statuses := s.connectorHealth.Statuses()
	tenantStatuses := make([]any, 0, len(statuses))
	for _, st := range statuses {
		if st.TenantID == scope.TenantID {
			tenantStatuses = append(tenantStatuses, st)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses": tenantStatuses,
		"count":    len(tenantStatuses),
	})
}
