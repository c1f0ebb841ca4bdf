package main

import (
	"go.uber.org/zap"

	"musicapi/internal/config"
	"musicapi/internal/repository"
	"musicapi/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewMySQLDB(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, cfg.Database.Name, logger)

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger)
	srv.Run(":" + cfg.Server.Port)
}
