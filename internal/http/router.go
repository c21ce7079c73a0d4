package http

import (
	"github.com/gin-gonic/gin"
	"github.com/unibague/agropecuario-api/internal/http/controller"
	"github.com/unibague/agropecuario-api/internal/http/middleware"
)

// InitRouter registers all API routes on the given engine. Static routes
// (/test, /estadisticas) are registered alongside the :id routes; Gin
// resolves the static segments first.
func InitRouter(server *gin.Engine, base *controller.Controller, productCtr *controller.ProductController, harvestCtr *controller.HarvestController) *gin.Engine {
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.RequestID())

	api := server.Group("/api")

	productos := api.Group("/productos")
	{
		productos.GET("/test", base.Test)
		productos.GET("/estadisticas", productCtr.Stats)

		productos.GET("", productCtr.List)
		productos.POST("", productCtr.Create)
		productos.GET("/:id", productCtr.Get)
		productos.PUT("/:id", productCtr.Update)
		productos.DELETE("/:id", productCtr.Delete)

		// Nested master-detail routes, ownership enforced per product.
		productos.GET("/:id/cosechas", harvestCtr.ListForProduct)
		productos.POST("/:id/cosechas", harvestCtr.CreateForProduct)
		productos.GET("/:id/cosechas/estadisticas", harvestCtr.StatsForProduct)
		productos.GET("/:id/cosechas/:hid", harvestCtr.GetForProduct)
		productos.PUT("/:id/cosechas/:hid", harvestCtr.UpdateForProduct)
		productos.DELETE("/:id/cosechas/:hid", harvestCtr.DeleteForProduct)
	}

	cosechas := api.Group("/cosechas")
	{
		cosechas.GET("", harvestCtr.List)
		cosechas.POST("", harvestCtr.Create)
		cosechas.GET("/:id", harvestCtr.Get)
		cosechas.PUT("/:id", harvestCtr.Update)
		cosechas.DELETE("/:id", harvestCtr.Delete)
	}

	return server
}
