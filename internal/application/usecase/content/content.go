package content

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sachin22-web/sachin-portfolio/adapters/event"
	"github.com/sachin22-web/sachin-portfolio/internal/domain/content"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type UseCase struct {
	contentRepo  content.Repository
	contentCache content.Cache
	kafkaClient  *event.KafkaProducerClient
	logger       logger.Logger
}

func NewUseCase(repo content.Repository, cache content.Cache, kClient *event.KafkaProducerClient, log logger.Logger) *UseCase {
	return &UseCase{
		contentRepo:  repo,
		contentCache: cache,
		kafkaClient:  kClient,
		logger:       log,
	}
}

// Get serves public section reads through the cache. Cache failures
// degrade to a database read rather than failing the request.
func (uc *UseCase) Get(ctx context.Context, key string) (*content.Section, error) {
	sectionKey, err := content.ParseSectionKey(key)
	if err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if uc.contentCache != nil {
		cached, ok, cacheErr := uc.contentCache.Get(ctx, sectionKey)
		if cacheErr != nil {
			uc.logger.Warn("Content cache read failed", zap.String("key", key), zap.Error(cacheErr))
		} else if ok {
			return cached, nil
		}
	}

	section, err := uc.contentRepo.Get(ctx, sectionKey)
	if err != nil {
		if errors.Is(err, content.ErrSectionNotFound) {
			return nil, apperror.NewNotFound("content section", key)
		}
		return nil, err
	}

	if uc.contentCache != nil {
		if cacheErr := uc.contentCache.Set(ctx, section); cacheErr != nil {
			uc.logger.Warn("Content cache write failed", zap.String("key", key), zap.Error(cacheErr))
		}
	}

	return section, nil
}

type UpsertInput struct {
	Key     string
	Content map[string]any
}

// Upsert replaces the section document wholesale. Repeating the same call
// leaves the stored content identical.
func (uc *UseCase) Upsert(ctx context.Context, input UpsertInput) (*content.Section, error) {
	sectionKey, err := content.ParseSectionKey(input.Key)
	if err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if input.Content == nil {
		input.Content = make(map[string]any)
	}

	section := &content.Section{
		Key:       sectionKey,
		Content:   input.Content,
		UpdatedAt: time.Now().UTC(),
	}

	if err := uc.contentRepo.Upsert(ctx, section); err != nil {
		return nil, err
	}

	if uc.contentCache != nil {
		if cacheErr := uc.contentCache.Invalidate(ctx, sectionKey); cacheErr != nil {
			uc.logger.Warn("Content cache invalidation failed", zap.String("key", input.Key), zap.Error(cacheErr))
		}
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishContentEvent(context.Background(), event.ContentEvent{
				SectionKey: string(sectionKey),
				Action:     "upserted",
				OccurredAt: section.UpdatedAt,
			})
			if err != nil {
				uc.logger.Error("Failed to publish content event", err, zap.String("key", input.Key))
			}
		}()
	}

	return section, nil
}
