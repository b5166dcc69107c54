package membership

import (
	"log/slog"

	"school-activities-system/internal/global/logger"
)

var log *slog.Logger

type ModuleMembership struct{}

func (m *ModuleMembership) GetName() string {
	return "Membership"
}

func (m *ModuleMembership) Init() {
	log = logger.New("Membership")
}
