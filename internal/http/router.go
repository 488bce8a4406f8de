package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prodcat/product-api/internal/http/controller"
	"github.com/prodcat/product-api/internal/http/middleware"
)

// InitRouter registers middleware and the product endpoints on the server.
func InitRouter(server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController) *gin.Engine {
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.RequestLogging())

	server.GET("/ping", ctr.Ping)

	products := server.Group("/api/v1/products")
	{
		products.POST("", productCtr.CreateProduct)
		products.GET("/search", productCtr.SearchProducts)
		products.GET("/:id", productCtr.GetProduct)
		products.PUT("/:id", productCtr.UpdateProduct)
		products.DELETE("/:id", productCtr.DeleteProduct)
	}

	return server
}
