package swot_controller

import (
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-gonic/gin"
)

var suggestClient *services.SuggestClient

// InitSuggest wires the suggestion client; call once at boot.
func InitSuggest(client *services.SuggestClient) {
	suggestClient = client
}

// SuggestSWOT godoc
// @Summary Suggest SWOT items from portfolio context
// @Tags Analysis - SWOT
// @Accept json
// @Produce json
// @Param context body models.SuggestSWOTRequest true "Company, industry, markets, products and computed points"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/ai/suggest-swot [post]
func SuggestSWOT(c *gin.Context) {
	var req models.SuggestSWOTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	lists, err := suggestClient.Suggest(c.Request.Context(), req)
	if err != nil {
		log.Printf("[swot.suggest] ERROR %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Suggestion service failed: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "SWOT suggestions generated", lists))
}
