package analysis_routes

import (
	"github.com/afrazja/bizanalysis-backend/controllers/analysis/bcg_controller"
	"github.com/afrazja/bizanalysis-backend/controllers/analysis/snapshot_controller"
	"github.com/afrazja/bizanalysis-backend/controllers/analysis/swot_controller"
	"github.com/gin-gonic/gin"
)

// SetupBCGRoutes registers compute and import endpoints.
func SetupBCGRoutes(rg *gin.RouterGroup) {
	rg.POST("/bcg", bcg_controller.ComputeBCG)
	rg.POST("/imports/bcg", bcg_controller.ImportBCGCSV)
}

// SetupSnapshotRoutes registers the snapshot surface. The static compare
// path takes precedence over the :id param routes.
func SetupSnapshotRoutes(rg *gin.RouterGroup) {
	rg.POST("/snapshots", snapshot_controller.CreateSnapshot)
	rg.GET("/snapshots", snapshot_controller.ListSnapshots)
	rg.GET("/snapshots/compare", snapshot_controller.CompareSnapshots)
	rg.GET("/snapshots/:id", snapshot_controller.GetSnapshotByID)
	rg.GET("/snapshots/:id/download", snapshot_controller.DownloadSnapshot)
}

// SetupSWOTRoutes registers the AI suggestion surface.
func SetupSWOTRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/suggest-swot", swot_controller.SuggestSWOT)
	rg.POST("/ai/suggest-swot/merge", swot_controller.MergeSWOT)
}
