package test

import (
	"school-activities-system/config"
	"school-activities-system/internal/global/database"

	"github.com/gin-gonic/gin"
)

// Setup 测试环境初始化，在 TestMain 里调用一次
func Setup() {
	gin.SetMode(gin.TestMode)
	config.InitTest()
	database.InitTest()
}

// ResetDB 换一个全新的内存库，测试之间互不影响
func ResetDB() {
	database.InitTest()
}
