package event

import (
	"school-activities-system/internal/global/middleware"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (e *ModuleEvent) InitRouter(r *gin.RouterGroup) {
	r.GET("/activities/:name/events", ListEvents)
	r.POST("/events/:id/attend", Attend)
	r.DELETE("/events/:id/attend", Unattend)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.POST("/activities/:name/events", CreateEvent)
		adminGroup.PUT("/events/:id", UpdateEvent)
		adminGroup.DELETE("/events/:id", DeleteEvent)
	}
}
