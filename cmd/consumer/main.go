package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/forwardpoint/backend/internal/logger"
)

const (
	defaultBrokers = "localhost:9092"
	topic          = "group_events"
	groupID        = "group-events-consumer"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = defaultBrokers
	}

	r := segmentio.NewReader(segmentio.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			zap.L().Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	zap.L().Info("consumer started", zap.String("topic", topic), zap.String("brokers", brokers))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("shutdown signal received, stopping consumer")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				zap.L().Error("failed to read message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			zap.L().Info("group event",
				zap.Time("timestamp", m.Time),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
				zap.ByteString("key", m.Key),
				zap.ByteString("payload", m.Value))
		}
	}
}
