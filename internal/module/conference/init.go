package conference

import (
	"log/slog"

	"lab-website-system/internal/global/logger"
)

var log *slog.Logger

type ModuleConference struct{}

func (m *ModuleConference) GetName() string {
	return "Conference"
}

func (m *ModuleConference) Init() {
	log = logger.New("Conference")
}
