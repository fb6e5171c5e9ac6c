package snapshot_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSnapshotByID godoc
// @Summary Get one snapshot
// @Tags Analysis - Snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/snapshots/{id} [get]
func GetSnapshotByID(c *gin.Context) {
	snapshot, ok := loadSnapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Snapshot fetched", snapshot))
}

// loadSnapshot resolves the :id param to a stored snapshot, writing the
// error response itself when the lookup fails.
func loadSnapshot(c *gin.Context) (*models.Snapshot, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid snapshot id"))
		return nil, false
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var snapshot models.Snapshot
	if err := config.DB.WithContext(ctx).First(&snapshot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Snapshot not found"))
		} else {
			log.Printf("[snapshots.get] ERROR db: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch snapshot"))
		}
		return nil, false
	}
	return &snapshot, true
}
