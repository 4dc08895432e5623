package notice

import (
	"log/slog"

	"lab-website-system/internal/global/logger"
)

var log *slog.Logger

type ModuleNotice struct{}

func (m *ModuleNotice) GetName() string {
	return "Notice"
}

func (m *ModuleNotice) Init() {
	log = logger.New("Notice")
}
