package module

import (
	"school-activities-system/internal/module/activity"
	"school-activities-system/internal/module/event"
	"school-activities-system/internal/module/frontend"
	"school-activities-system/internal/module/membership"
	"school-activities-system/internal/module/ping"
	"school-activities-system/internal/module/stats"
	"school-activities-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&user.ModuleUser{},
		&activity.ModuleActivity{},
		&membership.ModuleMembership{},
		&event.ModuleEvent{},
		&stats.ModuleStats{},
		&frontend.ModuleFrontend{},
	})
}
