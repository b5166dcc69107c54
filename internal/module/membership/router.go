package membership

import (
	"school-activities-system/internal/global/middleware"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleMembership) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin/memberships")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.GET("", ListRequests)
		adminGroup.POST("/:id/approve", ApproveRequest)
		adminGroup.POST("/:id/reject", RejectRequest)
	}
}
