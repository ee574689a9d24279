package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listApprovalsHandler lists pending approval requests for the tenant,
// optionally narrowed to one investigation.
func (s *Server) listApprovalsHandler(c *gin.Context) {
	scope := scopeFrom(c)

	pending, err := s.approvals.ListPending(c.Request.Context(), scope.TenantID, c.Query("investigation_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"approvals": pending,
		"count":     len(pending),
	})
}

// resolveApprovalHandler records a human decision on a pending request. The
// orchestrator polls the stored request, so a decision made on any replica
// reaches the run that is waiting on it.
func (s *Server) resolveApprovalHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	var req struct {
		Approve     bool   `json:"approve"`
		RespondedBy string `json:"responded_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.RespondedBy == "" {
		req.RespondedBy = scope.UserID
	}
	if req.RespondedBy == "" {
		abortWithError(c, http.StatusBadRequest, "responded_by or X-User-ID is required")
		return
	}

	resolved, err := s.approvals.Resolve(c.Request.Context(), scope.TenantID, id, req.Approve, req.RespondedBy)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}
