package market_controller

import (
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMarkets godoc
// @Summary List markets
// @Tags Catalog - Markets
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/v1/markets [get]
func GetMarkets(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var markets []models.Market
	if err := config.DB.WithContext(ctx).Order("name").Find(&markets).Error; err != nil {
		log.Printf("[markets.list] ERROR db: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch markets"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Markets fetched", markets))
}
