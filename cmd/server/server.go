package server

import (
	"fmt"
	"log/slog"

	"lab-website-system/config"
	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/httpclient"
	"lab-website-system/internal/global/logger"
	"lab-website-system/internal/global/middleware"
	"lab-website-system/internal/global/redis"
	"lab-website-system/internal/global/sentry"
	"lab-website-system/internal/global/upload"
	"lab-website-system/internal/module"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Warn("Sentry 初始化失败", "error", err)
	}

	database.Init()
	redis.Init()
	httpclient.Init()
	upload.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	defer sentry.Flush()

	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware())
	r.Use(middleware.Cors())
	r.Use(middleware.BodyLimit(cfg.Storage.MaxUploadSize))
	r.Use(middleware.Recovery())

	// 本地存储模式下直接托管上传目录
	if cfg.S3.Bucket == "" {
		r.Static("/static/upload", cfg.Storage.Home)
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	err := r.Run(cfg.Host + ":" + cfg.Port)
	tools.PanicOnErr(err)
}
