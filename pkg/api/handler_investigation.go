package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// Limits on list and extend parameters.
const (
	maxListLimit     = 200
	defaultListLimit = 50
	maxExtension     = 2 * time.Hour
)

// startInvestigationHandler admits an alert for investigation. Replays of the
// same (alert_id, correlation_key) return the existing investigation with 200
// instead of creating a duplicate.
func (s *Server) startInvestigationHandler(c *gin.Context) {
	scope := scopeFrom(c)

	var req models.StartInvestigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		req.UserID = scope.UserID
	}

	inv, existing, err := s.investigations.Start(c.Request.Context(), scope.TenantID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	status := http.StatusAccepted
	if existing {
		status = http.StatusOK
	}
	c.JSON(status, models.StartInvestigationResponse{
		InvestigationID: inv.ID,
		Status:          string(inv.Status),
		Existing:        existing,
	})
}

// statusHandler answers the live status poll with step progress and a
// completion estimate derived from the investigation's timeout budget.
func (s *Server) statusHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	inv, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	progress, steps, err := s.steps.Progress(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := models.StatusResponse{
		InvestigationID: inv.ID,
		Status:          string(inv.Status),
		Progress:        progress,
		CurrentAgent:    currentAgent(inv.Status),
		Steps:           steps,
		StartedAt:       inv.StartedAt,
	}
	if inv.Status.Terminal() {
		resp.Progress = 100
	} else if inv.StartedAt != nil {
		timeout := time.Duration(inv.TimeoutMs) * time.Millisecond
		if timeout <= 0 {
			timeout = s.defaultTimeout
		}
		eta := inv.StartedAt.Add(timeout)
		resp.EstimatedCompletion = &eta
	}
	c.JSON(http.StatusOK, resp)
}

// currentAgent names the agent responsible for the investigation's phase.
func currentAgent(status models.InvestigationStatus) string {
	switch status {
	case models.StatusPlanning:
		return "planner"
	case models.StatusExecuting:
		return "execution"
	case models.StatusAnalyzing:
		return "analyst"
	case models.StatusResponding, models.StatusAwaitingApproval:
		return "responder"
	}
	return ""
}

// timelineHandler returns the chronological step view.
func (s *Server) timelineHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	if _, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}
	_, steps, err := s.steps.Progress(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investigation_id": id,
		"timeline":         steps,
	})
}

// reportHandler composes the final report. Only terminal investigations have
// one; anything still running gets a conflict.
func (s *Server) reportHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	inv, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !inv.Status.Terminal() {
		abortWithError(c, http.StatusConflict, "investigation has not finished")
		return
	}

	_, steps, err := s.steps.Progress(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	feedback, err := s.feedback.ListByInvestigation(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	report := models.Report{
		InvestigationID: inv.ID,
		Status:          string(inv.Status),
		Timeline:        steps,
		Verdict:         inv.Verdict,
	}
	if inv.StartedAt != nil && inv.CompletedAt != nil {
		report.DurationMs = inv.CompletedAt.Sub(*inv.StartedAt).Milliseconds()
	}
	for _, step := range steps {
		report.Summary.TotalSteps++
		report.Summary.TotalRetries += step.Retries
		switch step.Status {
		case models.StepStatusComplete:
			report.Summary.Completed++
		case models.StepStatusFailed:
			report.Summary.Failed++
		}
	}
	for _, entry := range feedback {
		report.Feedback = append(report.Feedback, *entry)
	}
	c.JSON(http.StatusOK, report)
}

// listInvestigationsHandler lists investigations with filters and pagination.
func (s *Server) listInvestigationsHandler(c *gin.Context) {
	scope := scopeFrom(c)

	filters := models.InvestigationFilters{
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
		Limit:    defaultListLimit,
	}
	if filters.Status != "" && !models.InvestigationStatus(filters.Status).Valid() {
		abortWithError(c, http.StatusBadRequest, "unknown status filter: "+filters.Status)
		return
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = min(limit, maxListLimit)
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			abortWithError(c, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		filters.Offset = offset
	}
	if raw := c.Query("created_after"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "created_after must be RFC 3339")
			return
		}
		filters.CreatedAfter = &ts
	}
	if raw := c.Query("created_before"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "created_before must be RFC 3339")
			return
		}
		filters.CreatedBefore = &ts
	}

	list, err := s.investigations.List(c.Request.Context(), scope.TenantID, filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investigations": list,
		"count":          len(list),
		"limit":          filters.Limit,
		"offset":         filters.Offset,
	})
}

// statsHandler aggregates counts over a timeframe (24h, 7d, or 30d).
func (s *Server) statsHandler(c *gin.Context) {
	scope := scopeFrom(c)

	timeframe := c.DefaultQuery("timeframe", "24h")
	var window time.Duration
	switch timeframe {
	case "24h":
		window = 24 * time.Hour
	case "7d":
		window = 7 * 24 * time.Hour
	case "30d":
		window = 30 * 24 * time.Hour
	default:
		abortWithError(c, http.StatusBadRequest, "timeframe must be one of 24h, 7d, 30d")
		return
	}

	stats, err := s.investigations.Stats(c.Request.Context(), scope.TenantID, timeframe, window)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// postFeedbackHandler records analyst feedback on a running or finished
// investigation. Unknown feedback types are rejected.
func (s *Server) postFeedbackHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	var req models.PostFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !req.Type.Valid() {
		abortWithError(c, http.StatusBadRequest, "unknown feedback type: "+string(req.Type))
		return
	}
	if req.UserID == "" {
		req.UserID = scope.UserID
	}

	entry, err := s.feedback.Create(c.Request.Context(), scope.TenantID, id, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// pauseHandler suspends a running investigation at its next checkpoint.
// Control operations only reach runs executing on this replica.
func (s *Server) pauseHandler(c *gin.Context) {
	s.controlHandler(c, "pause", s.runtime.Pause)
}

// resumeHandler releases a paused investigation.
func (s *Server) resumeHandler(c *gin.Context) {
	s.controlHandler(c, "resume", s.runtime.Resume)
}

// cancelHandler aborts a running investigation.
func (s *Server) cancelHandler(c *gin.Context) {
	s.controlHandler(c, "cancel", s.runtime.Cancel)
}

func (s *Server) controlHandler(c *gin.Context, action string, op func(string) bool) {
	scope := scopeFrom(c)
	id := c.Param("id")

	if _, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}
	if !op(id) {
		abortWithError(c, http.StatusConflict, "investigation is not running on this replica")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investigation_id": id,
		"action":           action,
	})
}

// extendTimeoutHandler pushes a running investigation's deadline out.
func (s *Server) extendTimeoutHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	var req struct {
		ExtendMs int64 `json:"extend_ms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	delta := time.Duration(req.ExtendMs) * time.Millisecond
	if delta <= 0 || delta > maxExtension {
		abortWithError(c, http.StatusBadRequest, "extend_ms must be between 1 and 7200000")
		return
	}

	if _, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}
	deadline, ok := s.runtime.ExtendTimeout(id, delta)
	if !ok {
		abortWithError(c, http.StatusConflict, "investigation is not running on this replica")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investigation_id": id,
		"deadline":         deadline.UTC().Format(time.RFC3339),
	})
}

// deleteInvestigationHandler soft-deletes a terminal investigation. The row
// survives until the retention sweeper purges it.
func (s *Server) deleteInvestigationHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	inv, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !inv.Status.Terminal() {
		abortWithError(c, http.StatusConflict, "investigation has not finished")
		return
	}
	if err := s.investigations.SoftDelete(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
