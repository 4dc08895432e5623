package gallery

import (
	"log/slog"

	"lab-website-system/internal/global/logger"
)

var log *slog.Logger

type ModuleGallery struct{}

func (m *ModuleGallery) GetName() string {
	return "Gallery"
}

func (m *ModuleGallery) Init() {
	log = logger.New("Gallery")
}
