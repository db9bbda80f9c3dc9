package main

import (
	"log"
	"net/http"
	"time"

	"pet-health-records/internal/adapters/storage/postgres"
	"pet-health-records/internal/platform/config"
	"pet-health-records/internal/platform/logger"
	"pet-health-records/internal/router"
)

// @title        Pet Health Records API
// @version      1.0
// @description  CRUD de mascotas y registros médicos (vacunas/alergias) con dashboard de agregados.
// @basePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	appLog := logger.New(cfg.LoggerOptions())

	opts := router.Options{Log: appLog}
	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("postgres error: %v", err)
		}
		defer db.Close()
		opts.DB = db
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
	}

	appLog.Info("starting server", map[string]any{
		"addr":    cfg.Addr,
		"storage": storageKind(cfg.DBDSN),
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func storageKind(dsn string) string {
	if dsn != "" {
		return "postgres"
	}
	return "memory"
}
