package snapshot_controller

import (
	"log"
	"net/http"
	"strconv"

	snapshot_cache "github.com/afrazja/bizanalysis-backend/cache"
	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListSnapshots godoc
// @Summary List snapshots
// @Description Lists snapshots newest first, optionally filtered by kind
// @Tags Analysis - Snapshots
// @Produce json
// @Param kind query string false "Analysis kind (BCG, SWOT, ...)"
// @Param limit query int false "Max rows (default 20, cap 100)"
// @Success 200 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/v1/snapshots [get]
func ListSnapshots(c *gin.Context) {
	kind := c.Query("kind")
	if kind != "" && !models.IsValidSnapshotKind(kind) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid kind: "+kind))
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid limit: "+raw))
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if rows, ok := snapshot_cache.GetList(kind, limit); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Snapshots fetched (cached)", rows))
		return
	}

	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	var rows []models.Snapshot
	if err := query.Find(&rows).Error; err != nil {
		log.Printf("[snapshots.list] ERROR db: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch snapshots"))
		return
	}

	snapshot_cache.SetList(kind, limit, rows)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Snapshots fetched", rows))
}
