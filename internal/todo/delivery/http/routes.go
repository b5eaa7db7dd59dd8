package http

import (
	"github.com/gin-gonic/gin"

	"todo-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.POST("", mw.RateLimit(), h.Create)
		todos.GET("", mw.RateLimit(), h.List)
		todos.POST("/:id/complete", mw.RateLimit(), h.Complete)
	}
}
