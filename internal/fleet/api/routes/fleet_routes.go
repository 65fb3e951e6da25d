package routes

import (
	"VCS_SMS_Fleet/internal/fleet/api/handler"
	"VCS_SMS_Fleet/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

func AddFleetRoutes(r *gin.Engine, handler handler.FleetHandler, m middleware.AuthMiddleware) {
	fleetRoutes := r.Group("", m.RequireToken())
	fleetRoutes.GET("/summary", handler.GetSummary())
	fleetRoutes.GET("/availability", handler.GetServicesAvailability())
	fleetRoutes.GET("/reports/export", handler.ExportFleetReport())
	fleetRoutes.POST("/reports", handler.ReportFleetStatus())
}

// AddMetricsRoute exposes the prometheus handler without authentication.
func AddMetricsRoute(r *gin.Engine, h http.Handler) {
	r.GET("/metrics", gin.WrapH(h))
}
