package snapshot_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/gin-gonic/gin"
)

// DownloadSnapshot godoc
// @Summary Download a snapshot as pretty-printed JSON
// @Description Serves the full snapshot object as an attachment
// @Tags Analysis - Snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/snapshots/{id}/download [get]
func DownloadSnapshot(c *gin.Context) {
	snapshot, ok := loadSnapshot(c)
	if !ok {
		return
	}

	pretty, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Printf("[snapshots.download] ERROR marshal: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to encode snapshot"))
		return
	}

	shortID := snapshot.ID.String()[:8]
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="snapshot-%s.json"`, shortID))
	c.Data(http.StatusOK, "application/json", pretty)
}
