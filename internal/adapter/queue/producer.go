package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/plastinin/mediashelf/internal/config"
)

// Типы задач
const (
	TypeDocumentThumbnail = "document:thumbnail"
)

// DocumentThumbnailPayload данные задачи на генерацию миниатюры
type DocumentThumbnailPayload struct {
	DocumentID string `json:"document_id"`
}

// ThumbnailProducer отправляет задачи в очередь
type ThumbnailProducer struct {
	client *asynq.Client
}

// NewThumbnailProducer создаёт новый экземпляр ThumbnailProducer
func NewThumbnailProducer(cfg config.RedisConfig) *ThumbnailProducer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &ThumbnailProducer{client: client}
}

// Enqueue добавляет задачу в очередь
func (p *ThumbnailProducer) Enqueue(ctx context.Context, documentID uuid.UUID) error {
	payload, err := json.Marshal(DocumentThumbnailPayload{
		DocumentID: documentID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeDocumentThumbnail, payload,
		asynq.MaxRetry(3),         // Максимум 3 попытки
		asynq.Queue("thumbnails"), // Очередь миниатюр
	)

	_, err = p.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	return nil
}

// Close закрывает соединение
func (p *ThumbnailProducer) Close() error {
	return p.client.Close()
}
