package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/sachin22-web/sachin-portfolio/adapters/event"
	"github.com/sachin22-web/sachin-portfolio/adapters/persistence"
	"github.com/sachin22-web/sachin-portfolio/internal/config"
	"github.com/sachin22-web/sachin-portfolio/internal/domain/content"
)

// The worker keeps the Redis content cache in step with the database by
// consuming section events published by the API.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	contentCache := persistence.NewRedisContentCache(redisClient)

	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "content-cache-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContentEvent
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contentConsumer, msg)
			continue
		}

		key, err := content.ParseSectionKey(payload.SectionKey)
		if err != nil {
			log.Printf("ERROR: Event carries unknown section key %q. Skipping.", payload.SectionKey)
			commitMessage(contentConsumer, msg)
			continue
		}

		if err := contentCache.Invalidate(ctx, key); err != nil {
			log.Printf("ERROR: Failed to invalidate cache for %q: %v", payload.SectionKey, err)
			continue
		}

		log.Printf("Invalidated cached section %q", payload.SectionKey)
		commitMessage(contentConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
