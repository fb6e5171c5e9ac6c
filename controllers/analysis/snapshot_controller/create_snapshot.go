package snapshot_controller

import (
	"log"
	"net/http"

	snapshot_cache "github.com/afrazja/bizanalysis-backend/cache"
	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateSnapshot godoc
// @Summary Save an analysis snapshot
// @Description Stores an immutable capture of one analysis payload
// @Tags Analysis - Snapshots
// @Accept json
// @Produce json
// @Param snapshot body models.SnapshotRequest true "Snapshot kind, payload and optional note"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/v1/snapshots [post]
func CreateSnapshot(c *gin.Context) {
	var req models.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[snapshots.create] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if !models.IsValidSnapshotKind(req.Kind) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid kind: "+req.Kind))
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot := models.Snapshot{
		Kind:    req.Kind,
		Payload: req.Payload,
		Note:    req.Note,
	}
	if err := config.DB.WithContext(ctx).Create(&snapshot).Error; err != nil {
		log.Printf("[snapshots.create] ERROR db: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save snapshot"))
		return
	}

	snapshot_cache.Invalidate()
	log.Printf("[snapshots.create] saved kind=%s id=%s", snapshot.Kind, snapshot.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Snapshot saved", snapshot))
}
