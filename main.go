package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/config"
	appctx "github.com/syrilster/migrate-leaves-to-bamboohr/internal/context"
)

func main() {
	// load values from .env into the system
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}

	cfg, err := config.NewApplicationConfig()
	if err != nil {
		log.Fatalf("failed to start application: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel())
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", cfg.LogLevel())
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})
	log.AddHook(appctx.RequestIDHook{})

	server := internal.SetupServer(cfg)
	server.Start("", cfg.ServerPort())
}
