package page

import (
	"log/slog"

	"lab-website-system/internal/global/logger"
)

var log *slog.Logger

type ModulePage struct{}

func (m *ModulePage) GetName() string {
	return "Page"
}

func (m *ModulePage) Init() {
	log = logger.New("Page")
}
