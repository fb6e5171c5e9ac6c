package product_controller

import (
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products with their markets
// @Tags Catalog - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/v1/products [get]
func GetProducts(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.DB.WithContext(ctx).Preload("Market").Order("name").Find(&products).Error; err != nil {
		log.Printf("[products.list] ERROR db: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", products))
}
