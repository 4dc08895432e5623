package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance *Config

// Init 加载配置：先读取 config.yaml（可选），再用环境变量覆盖
func Init() {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}
	}

	if err := envconfig.Process("lab", cfg); err != nil {
		log.Fatalf("读取环境变量配置失败: %v", err)
	}

	instance = cfg
}

// Get 获取全局配置；未显式 Init 时返回默认配置（测试场景）
func Get() *Config {
	if instance == nil {
		instance = defaultConfig()
	}
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "5000",
		Prefix: "",
		Mode:   ModeDebug,
		JWT: JWT{
			AccessSecret: "dev-secret",
			AccessExpire: 24 * 3600,
		},
		Storage: Storage{
			Home:          "static/upload",
			BaseURL:       "/static/upload",
			MaxUploadSize: 64 << 20,
		},
		Log: Log{
			Level: "info",
		},
	}
}
