package stats

import (
	"school-activities-system/internal/global/middleware"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (*ModuleStats) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.GET("/statistics", Statistics)
		adminGroup.GET("/reports", Reports)
		adminGroup.GET("/reports/export", ExportReports)
	}
}
