package activity

import (
	"school-activities-system/internal/global/middleware"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activities")
	{
		activityGroup.GET("", ListActivities)
		activityGroup.GET("/:name", GetActivity)
		activityGroup.POST("/:name/signup", Signup)
		activityGroup.DELETE("/:name/unregister", Unregister)
	}

	adminGroup := r.Group("/admin/activities")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.POST("", CreateActivity)
		adminGroup.PUT("/:name", UpdateActivity)
		adminGroup.DELETE("/:name", DeleteActivity)
	}
}
