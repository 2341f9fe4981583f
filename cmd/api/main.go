package main

import (
	"context"
	"flag"
	"time"

	"moviecatalog/proj/internal/api/tasks"
	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/lib/logger"
	"moviecatalog/proj/internal/services"
	"moviecatalog/proj/internal/storage/postgres"
	pgmodels "moviecatalog/proj/internal/storage/postgres/models"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	godotenv.Load()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Conn.Close()
	log.Info("database connection established")

	bgTasks := tasks.New(log, cfg.Tasks.MaxWorkers, cfg.Tasks.MaxQueueSize)
	bgTasks.Run()

	models := pgmodels.New(storage)
	services := services.New(log, cfg, models, bgTasks)
	app := NewApplication(cfg, log, services, bgTasks)

	if err := app.serve(); err != nil {
		log.Error("server stopped with error", "error", err.Error())
	}
}
