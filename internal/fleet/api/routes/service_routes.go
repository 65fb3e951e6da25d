package routes

import (
	"VCS_SMS_Fleet/internal/fleet/api/handler"
	"VCS_SMS_Fleet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddServiceRoutes(r *gin.Engine, handler handler.ServiceHandler, m middleware.AuthMiddleware) {
	serviceRoutes := r.Group("/services", m.RequireToken())
	serviceRoutes.POST("", handler.CreateService())
	serviceRoutes.GET("/:id", handler.GetService())
	serviceRoutes.DELETE("/:id", handler.DeleteService())
	serviceRoutes.POST("/:id/check", handler.CheckService())
}
