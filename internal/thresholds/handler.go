package thresholds

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/hashsplit/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all threshold API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/thresholds", s.HandleThresholds)
	r.GET("/v1/thresholds/queries", s.HandleQueries)
	r.GET("/v1/partitions/:index/keys", s.HandleKeys)
}

// HandleThresholds handles GET /v1/thresholds
// Query parameters: groups, cache
func (s *Service) HandleThresholds(c *gin.Context) {
	var req ThresholdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badQuery(c, err)
		return
	}

	resp, err := s.Thresholds(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to compute thresholds")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleQueries handles GET /v1/thresholds/queries
// Query parameters: groups, cache, table, hash_column, key_column, fold_case, limit
func (s *Service) HandleQueries(c *gin.Context) {
	var req RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badQuery(c, err)
		return
	}

	resp, err := s.Queries(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to build range queries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleKeys handles GET /v1/partitions/:index/keys
// Query parameters: same as HandleQueries
func (s *Service) HandleKeys(c *gin.Context) {
	var uri struct {
		Index int `uri:"index"`
	}
	var req RangeRequest

	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		badQuery(c, err)
		return
	}

	resp, err := s.Keys(c.Request.Context(), uri.Index, req)
	if err != nil {
		writeError(c, err, "Failed to scan partition")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func badQuery(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   "Invalid query parameters",
		Details:   err.Error(),
	})
}

func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid threshold request",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrPartitionNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpPartitionNotFound,
			Message:   "Partition not found",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpStoreUnavailableError,
			Message:   "No database configured",
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
