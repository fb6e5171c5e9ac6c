package catalog_routes

import (
	"github.com/afrazja/bizanalysis-backend/controllers/catalog/market_controller"
	"github.com/afrazja/bizanalysis-backend/controllers/catalog/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupMarketRoutes registers market endpoints.
func SetupMarketRoutes(rg *gin.RouterGroup) {
	rg.POST("/markets/bulk", market_controller.BulkCreateMarkets)
	rg.GET("/markets", market_controller.GetMarkets)
}

// SetupProductRoutes registers product endpoints.
func SetupProductRoutes(rg *gin.RouterGroup) {
	rg.POST("/products/bulk", product_controller.BulkCreateProducts)
	rg.GET("/products", product_controller.GetProducts)
}
