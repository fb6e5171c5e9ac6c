package bcg_controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-gonic/gin"
)

// ImportBCGCSV godoc
// @Summary Import markets and products from CSV and compute BCG
// @Description Validates the whole file, persists entities best-effort, always computes points
// @Tags Analysis - BCG
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV with product_name, market_name, market_growth_rate, market_share_percent, largest_rival_share_percent"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /api/v1/imports/bcg [post]
func ImportBCGCSV(c *gin.Context) {
	log.Printf("[bcg.import] start")
	start := time.Now()

	reader, err := uploadReader(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	defer reader.Close()

	rows, err := services.ParseImportCSV(reader)
	if err != nil {
		log.Printf("[bcg.import] ERROR parse: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid upload: "+err.Error()))
		return
	}

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	report, err := services.RunImport(ctx, config.DB, rows)
	if err != nil {
		var valErr *services.ValidationError
		if errors.As(err, &valErr) {
			log.Printf("[bcg.import] ERROR validation: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid upload: "+err.Error()))
			return
		}
		// Computation failure: nothing to chart, so the whole import fails.
		log.Printf("[bcg.import] ERROR compute: %v", err)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("[bcg.import] done outcome=%s markets=%d products=%d points=%d in %v",
		report.Outcome, report.MarketsPersisted, report.ProductsPersisted, len(report.Points), time.Since(start))

	msg := fmt.Sprintf("Imported %d market(s) and %d product(s); BCG computed with %d point(s)",
		report.MarketsPersisted, report.ProductsPersisted, len(report.Points))
	if report.Degraded() {
		msg = fmt.Sprintf("BCG computed with %d point(s); database unavailable, entities not persisted", len(report.Points))
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, msg, report))
}

// uploadReader accepts either a multipart "file" field or a raw CSV body.
func uploadReader(c *gin.Context) (io.ReadCloser, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("could not read upload: %w", err)
		}
		return f, nil
	}
	if c.Request.Body == nil {
		return nil, fmt.Errorf("missing CSV upload")
	}
	return c.Request.Body, nil
}
