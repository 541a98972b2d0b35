package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/service"
	"github.com/kevin-chtw/tw_riichi/utils"
)

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", gin.ReleaseMode)
	v.SetDefault("log.level", "info")
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("recognizer.url", "http://127.0.0.1:5001")
	v.SetDefault("recognizer.timeout", "10s")
	v.SetDefault("rule.double_wind_stacked", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logrus.Fatalf("read config failed: %v", err)
		}
	}
	return v
}

func main() {
	cfg := loadConfig()

	level, err := logrus.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger := utils.Logger(level)

	rule := mahjong.DefaultRule()
	rule.DoubleWindStacked = cfg.GetBool("rule.double_wind_stacked")

	recognizer := service.NewRecognizer(
		cfg.GetString("recognizer.url"),
		cfg.GetDuration("recognizer.timeout"),
	)

	gin.SetMode(cfg.GetString("server.mode"))
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: cfg.GetStringSlice("cors.origins"),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	service.NewScorer(logger, recognizer, rule).Register(engine)

	addr := cfg.GetString("server.addr")
	logger.Infof("riichi scorer listening on %s", addr)
	if err := engine.Run(addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
