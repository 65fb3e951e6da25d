package routes

import (
	"VCS_SMS_Fleet/internal/fleet/api/handler"
	"VCS_SMS_Fleet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddServerRoutes(r *gin.Engine, handler handler.ServerHandler, m middleware.AuthMiddleware) {
	serverRoutes := r.Group("/servers", m.RequireToken())
	serverRoutes.POST("", handler.CreateServer())
	serverRoutes.GET("", handler.GetServers())
	serverRoutes.POST("/import", handler.ImportServersFromExcelFile())
	serverRoutes.GET("/:id", handler.GetServer())
	serverRoutes.DELETE("/:id", handler.DeleteServer())
	serverRoutes.GET("/:id/services", handler.GetServerServices())
	serverRoutes.POST("/:id/test-connection", handler.TestConnection())
	serverRoutes.POST("/:id/check-services", handler.CheckServerServices())
}
