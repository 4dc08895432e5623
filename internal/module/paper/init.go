package paper

import (
	"log/slog"

	"lab-website-system/internal/global/logger"
)

var log *slog.Logger

type ModulePaper struct{}

func (p *ModulePaper) GetName() string {
	return "Paper"
}

func (p *ModulePaper) Init() {
	log = logger.New("Paper")
}
