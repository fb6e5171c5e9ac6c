package market_controller

import (
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// BulkCreateMarkets godoc
// @Summary Create markets in bulk
// @Description Creates markets by name; an existing name keeps its stored growth rate
// @Tags Catalog - Markets
// @Accept json
// @Produce json
// @Param markets body models.BulkMarketsRequest true "Markets to create"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/v1/markets/bulk [post]
func BulkCreateMarkets(c *gin.Context) {
	var req models.BulkMarketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No markets provided"))
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	records := make([]models.Market, 0, len(req.Items))
	names := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		records = append(records, models.Market{Name: item.Name, GrowthRate: item.GrowthRate})
		names = append(names, item.Name)
	}

	if err := config.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&records).Error; err != nil {
		log.Printf("[markets.bulk] ERROR db: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create markets"))
		return
	}

	// Return stored rows so callers get server-assigned ids, whether the
	// market was created now or already existed.
	var stored []models.Market
	if err := config.DB.WithContext(ctx).Where("name IN ?", names).Order("name").Find(&stored).Error; err != nil {
		log.Printf("[markets.bulk] ERROR reload: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load created markets"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Markets created", models.BulkMarketsResponse{Items: stored}))
}
