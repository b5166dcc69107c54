package frontend

import (
	"log/slog"

	"school-activities-system/internal/global/logger"
)

var log *slog.Logger

type ModuleFrontend struct{}

func (f *ModuleFrontend) GetName() string {
	return "Frontend"
}

func (f *ModuleFrontend) Init() {
	log = logger.New("Frontend")
}
