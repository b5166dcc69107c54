package user

import (
	"school-activities-system/internal/global/middleware"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
	}

	authedGroup := r.Group("/auth")
	authedGroup.Use(middleware.Auth(model.RoleStudent))
	{
		authedGroup.GET("/me", Me)
		authedGroup.POST("/change-password", ChangePassword)
	}
}
