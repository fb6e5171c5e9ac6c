package swot_controller

import (
	"net/http"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-gonic/gin"
)

// MergeSWOT godoc
// @Summary Merge suggested SWOT items into existing lists
// @Description Appends suggestions that are not case-insensitive substring duplicates of existing items
// @Tags Analysis - SWOT
// @Accept json
// @Produce json
// @Param lists body models.MergeSWOTRequest true "Existing and suggested lists"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/ai/suggest-swot/merge [post]
func MergeSWOT(c *gin.Context) {
	var req models.MergeSWOTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	merged := services.MergeSWOT(req.Existing, req.Suggested)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "SWOT lists merged", merged))
}
