package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/forwardpoint/backend/internal/cache"
	"github.com/forwardpoint/backend/internal/carrier"
	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/db"
	"github.com/forwardpoint/backend/internal/kafka"
	"github.com/forwardpoint/backend/internal/logger"
	"github.com/forwardpoint/backend/internal/repository/postgresql"
	"github.com/forwardpoint/backend/internal/server"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		zap.L().Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	db.InitAdmin(database)

	groupRepo := postgresql.NewGroupRepo(database)
	packageRepo := postgresql.NewPackageRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	rateRepo := postgresql.NewRateRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	groupCache := cache.NewGroupCache(groupRepo)
	if err := groupCache.LoadInitialData(ctx); err != nil {
		zap.L().Warn("group cache warm-up failed, starting cold", zap.Error(err))
	}

	carrierClient := carrier.NewClient(5 * time.Second)

	service := consolidation.NewService(
		database,
		groupRepo,
		packageRepo,
		historyRepo,
		rateRepo,
		outboxRepo,
		carrierClient,
		groupCache,
	)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(brokers, ","))
	} else {
		zap.L().Warn("KAFKA_BROKERS not set, group events will be logged instead of published")
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	srv := server.New(service, userRepo)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx, port)
	})
	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Fatal("service exited with error", zap.Error(err))
	}
	zap.L().Info("service stopped")
}
