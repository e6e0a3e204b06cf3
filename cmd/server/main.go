package main

import (
	"fmt"

	"shoe-tracker/internal/config"
	"shoe-tracker/internal/database"
	"shoe-tracker/internal/logger"
	"shoe-tracker/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	defer cleanup()

	if cfg.LogJSON {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal("failed to open stores", zap.Error(err))
	}

	r := server.NewRouter(cfg, db, log)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
