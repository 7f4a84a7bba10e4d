package routes

import (
	"shop-list-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(controller *controllers.ProductController) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/products", controller.GetProducts)
	r.POST("/products", controller.CreateProduct)
	r.PATCH("/products/:id/check", controller.ToggleProduct)
	r.DELETE("/products/:id", controller.DeleteProduct)

	r.GET("/ws", controller.WebSocketHandler)

	return r
}
