package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/config"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/connections/database"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/connections/rabbitmq"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/connections/redisconn"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/events"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/handlers"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/httpx"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/logger"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	port := flag.Int("port", 0, "http port override")
	flag.Parse()

	lg := logger.New("scheduling-core")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		lg.Error().Err(err).Msg("config_load_failed")
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	if err := database.RunMigrations(cfg.Database); err != nil {
		lg.Error().Err(err).Msg("migrations_failed")
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Error().Err(err).Msg("db_connect_failed")
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := redisconn.Connect(ctx, cfg.Redis)
	if err != nil {
		lg.Error().Err(err).Msg("redis_connect_failed")
		os.Exit(1)
	}
	defer redisClient.Close()

	mq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		lg.Error().Err(err).Msg("rabbitmq_connect_failed")
		os.Exit(1)
	}
	defer mq.Close()

	pub, err := events.NewPublisher(mq)
	if err != nil {
		lg.Error().Err(err).Msg("exchange_declare_failed")
		os.Exit(1)
	}

	repo := repository.New(pool)
	carts := repository.NewCartRepository(redisClient)
	svc := service.New(repo, carts, pub, cfg.Scheduling, lg)
	h := handlers.New(svc, lg)

	srv := httpx.New(":"+strconv.Itoa(cfg.Server.Port), handlers.Router(h, lg))
	lg.Info().Int("port", cfg.Server.Port).Msg("service_started")
	if err := srv.Run(ctx); err != nil {
		lg.Error().Err(err).Msg("server_failed")
		os.Exit(1)
	}
	lg.Info().Msg("graceful_shutdown")
}
