package appointment

import (
	"go-bookingdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", middleware.RateLimitByIP(1, 5), handler.Create)
		appointments.GET("", handler.GetAll)
		appointments.GET("/:id", handler.GetByID)
	}
}
