package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/portify/portify-api/adapters/event"
	"github.com/portify/portify-api/adapters/persistence"
	portfolioUC "github.com/portify/portify-api/internal/application/usecase/portfolio"
	"github.com/portify/portify-api/internal/config"
	"github.com/portify/portify-api/pkg/logger"
)

func main() {
	fmt.Println("Starting Portify Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("FATAL: cannot load config: %v", err))
	}

	log := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, log)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, log)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, log)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, log)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, log)

	portfolioCache := persistence.NewPortfolioCache(redisClient, cfg.Redis.CacheTTL, log)

	getPortfolioUseCase := portfolioUC.NewGetPortfolioUseCase(
		profileRepo, skillRepo, projectRepo, experienceRepo, educationRepo, portfolioCache, log,
	)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-cache-warmer",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Info("Worker listening on topic " + event.TopicPortfolioEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Error("failed to read message from Kafka", err)
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("failed to unmarshal event, skipping", err)
			commitMessage(consumer, msg, log)
			continue
		}

		log.Info("processing event",
			zap.String("event_type", payload.EventType),
			zap.String("owner_id", payload.OwnerID.String()),
			zap.String("section", payload.Section),
		)

		if err := getPortfolioUseCase.WarmCache(ctx, payload.OwnerID); err != nil {
			log.Error("failed to warm cache", err,
				zap.String("owner_id", payload.OwnerID.String()))
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("failed to commit message", err)
	}
}
