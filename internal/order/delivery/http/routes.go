package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	orders := rg.Group("/orders")
	{
		orders.POST("/create", h.Create)
	}
}
