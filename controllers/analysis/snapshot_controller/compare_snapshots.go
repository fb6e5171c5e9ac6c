package snapshot_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompareSnapshots godoc
// @Summary Compare two BCG snapshots
// @Description Returns per-product deltas and quadrant transitions, ordered by the to-side snapshot
// @Tags Analysis - Snapshots
// @Produce json
// @Param from query string true "From snapshot ID"
// @Param to query string true "To snapshot ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/snapshots/compare [get]
func CompareSnapshots(c *gin.Context) {
	fromSnap, ok := fetchByQueryParam(c, "from")
	if !ok {
		return
	}
	toSnap, ok := fetchByQueryParam(c, "to")
	if !ok {
		return
	}

	fromPts, err := services.PointsFromSnapshot(fromSnap)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	toPts, err := services.PointsFromSnapshot(toSnap)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	records := services.DiffSnapshots(fromPts, toPts)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Snapshots compared", records))
}

func fetchByQueryParam(c *gin.Context, param string) (*models.Snapshot, bool) {
	id, err := uuid.Parse(c.Query(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid or missing "+param+" snapshot id"))
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
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Snapshot not found: "+id.String()))
		} else {
			log.Printf("[snapshots.compare] ERROR db: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch snapshot"))
		}
		return nil, false
	}
	return &snapshot, true
}
