package routes

import (
	"VCS_SMS_Fleet/internal/fleet/api/handler"
	"VCS_SMS_Fleet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddRenewalRoutes(r *gin.Engine, handler handler.RenewalHandler, m middleware.AuthMiddleware) {
	renewalRoutes := r.Group("/renewals", m.RequireToken())
	renewalRoutes.POST("", handler.CreateRenewal())
	renewalRoutes.GET("", handler.GetRenewals())
	renewalRoutes.GET("/:id", handler.GetRenewal())
	renewalRoutes.DELETE("/:id", handler.DeleteRenewal())
	renewalRoutes.POST("/:id/execute", handler.ExecuteRenewal())
	renewalRoutes.POST("/:id/test", handler.TestRenewal())
}
