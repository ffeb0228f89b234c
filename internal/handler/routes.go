package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/middleware"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth      *AuthHandler
	Documents *DocumentHandler
	Vacations *VacationHandler
	Overview  *OverviewHandler
	Export    *ExportHandler
	Metrics   *MetricsHandler
}

// RegisterRoutes wires the API surface onto the router. Reads are public;
// every mutation requires a valid token, and wholesale imports require the
// admin role.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth *service.AuthService, exportEnabled bool) {
	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", middleware.JWT(auth), h.Auth.Me)

	docs := api.Group("/docs")
	{
		docs.GET("", middleware.OptionalJWT(auth), h.Documents.List)
		docs.GET("/:fileId", h.Documents.Get)

		protected := docs.Group("", middleware.JWT(auth))
		protected.POST("", h.Documents.Commit)
		protected.PUT("/:fileId/rows", h.Documents.ReplaceRows)
		protected.PATCH("/:fileId/enabled", h.Documents.SetEnabled)
		protected.DELETE("/:fileId", h.Documents.Delete)
	}

	vacations := api.Group("/vacations")
	{
		vacations.GET("", h.Vacations.List)
		vacations.PUT("", middleware.JWT(auth), middleware.RequireRoles(models.RoleAdmin), h.Vacations.Replace)
	}

	api.GET("/weeks", h.Overview.Get)
	if exportEnabled {
		api.GET("/weeks/export", h.Export.Download)
	}

	r.GET("/metrics", h.Metrics.Prometheus)
}
