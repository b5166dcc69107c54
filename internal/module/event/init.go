package event

import (
	"log/slog"

	"school-activities-system/internal/global/logger"
)

var log *slog.Logger

type ModuleEvent struct{}

func (e *ModuleEvent) GetName() string {
	return "Event"
}

func (e *ModuleEvent) Init() {
	log = logger.New("Event")
}
