package frontend

import (
	"net/http"

	"school-activities-system/config"

	"github.com/gin-gonic/gin"
)

// InitRouter 托管预构建的前端静态资源
func (f *ModuleFrontend) InitRouter(r *gin.RouterGroup) {
	staticDir := config.Get().Storage.StaticDir

	r.Static("/static", staticDir)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/static/index.html")
	})
}
