package admin

import (
	"go-bookingdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, directory middleware.Directory) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(directory), middleware.RequireAdminRole())
	{
		adminGroup.GET("/dashboard", handler.Dashboard)
		adminGroup.PUT("/appointments/:id/approve", handler.Approve)
		adminGroup.PUT("/appointments/:id/decline", handler.Decline)
	}
}
