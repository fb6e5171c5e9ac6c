package bcg_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-gonic/gin"
)

// ComputeBCG godoc
// @Summary Compute BCG matrix points
// @Description Computes relative market share, growth and quadrant for each product
// @Tags Analysis - BCG
// @Accept json
// @Produce json
// @Param products body []models.ProductInput true "Products with fractional shares and percent growth"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /api/v1/bcg [post]
func ComputeBCG(c *gin.Context) {
	var inputs []models.ProductInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		log.Printf("[bcg.compute] ERROR invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	points, err := services.ComputePoints(inputs)
	if err != nil {
		var compErr *services.ComputationError
		if errors.As(err, &compErr) {
			log.Printf("[bcg.compute] ERROR %v", err)
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute BCG points"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "BCG computed", points))
}
