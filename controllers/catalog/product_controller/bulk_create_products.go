package product_controller

import (
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
)

// BulkCreateProducts godoc
// @Summary Create products in bulk
// @Description Creates products, optionally linked to markets by id; shares are fractions
// @Tags Catalog - Products
// @Accept json
// @Produce json
// @Param products body models.BulkProductsRequest true "Products to create"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/v1/products/bulk [post]
func BulkCreateProducts(c *gin.Context) {
	var req models.BulkProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No products provided"))
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	records := make([]models.Product, 0, len(req.Items))
	for _, item := range req.Items {
		records = append(records, models.Product{
			Name:              item.Name,
			MarketID:          item.MarketID,
			MarketShare:       item.MarketShare,
			LargestRivalShare: item.LargestRivalShare,
		})
	}

	if err := config.DB.WithContext(ctx).Create(&records).Error; err != nil {
		log.Printf("[products.bulk] ERROR db: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create products"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Products created", models.BulkProductsResponse{Items: records}))
}
