package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/evidence"
)

// evidenceHandler lists an investigation's evidence, optionally filtered by
// the search grammar in the q parameter (type:, source:, confidence:>,
// entity:kind:value, free text). Results carry facet counts for the full
// filtered set regardless of pagination.
func (s *Server) evidenceHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	if _, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}

	records, err := s.evidence.ListByInvestigation(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if raw := c.Query("q"); raw != "" {
		query, err := evidence.ParseQuery(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid query: "+err.Error())
			return
		}
		records = query.Filter(records)
	}

	facets := evidence.BuildFacets(records, time.Now().UTC())
	total := len(records)

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxListLimit)
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		offset = parsed
	}
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	page := records[offset:end]

	c.JSON(http.StatusOK, gin.H{
		"investigation_id": id,
		"evidence":         page,
		"total":            total,
		"limit":            limit,
		"offset":           offset,
		"facets":           facets,
	})
}

// networkHandler returns the correlation network: evidence nodes joined by
// temporal, entity, and behavioral relationships.
func (s *Server) networkHandler(c *gin.Context) {
	scope := scopeFrom(c)
	id := c.Param("id")

	if _, err := s.investigations.Get(c.Request.Context(), scope.TenantID, id); err != nil {
		mapServiceError(c, err)
		return
	}

	records, err := s.evidence.ListByInvestigation(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	links, err := s.evidence.ListRelationships(c.Request.Context(), scope.TenantID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evidence.BuildNetwork(records, links))
}
