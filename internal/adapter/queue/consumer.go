package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/plastinin/mediashelf/internal/config"
	"github.com/plastinin/mediashelf/internal/usecase"
	"go.uber.org/zap"
)

// ThumbnailConsumer обрабатывает задачи из очереди
type ThumbnailConsumer struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	thumbnailUC *usecase.ThumbnailUseCase
	logger      *zap.Logger
}

// NewThumbnailConsumer создаёт новый экземпляр ThumbnailConsumer
func NewThumbnailConsumer(
	cfg config.RedisConfig,
	thumbnailUC *usecase.ThumbnailUseCase,
	logger *zap.Logger,
) *ThumbnailConsumer {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 4, // Генерация миниатюр не тяжёлая, но декодирование жрёт CPU
			Queues: map[string]int{
				"thumbnails": 10, // Приоритет очереди
				"default":    1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	consumer := &ThumbnailConsumer{
		server:      server,
		mux:         asynq.NewServeMux(),
		thumbnailUC: thumbnailUC,
		logger:      logger,
	}

	// Регистрируем обработчики
	consumer.mux.HandleFunc(TypeDocumentThumbnail, consumer.handleDocumentThumbnail)

	return consumer
}

// Start запускает обработку задач
func (c *ThumbnailConsumer) Start() error {
	c.logger.Info("Starting thumbnail consumer")
	return c.server.Start(c.mux)
}

// Stop останавливает обработку задач
func (c *ThumbnailConsumer) Stop() {
	c.logger.Info("Stopping thumbnail consumer")
	c.server.Stop()
	c.server.Shutdown()
}

// handleDocumentThumbnail обрабатывает задачу генерации миниатюры
func (c *ThumbnailConsumer) handleDocumentThumbnail(ctx context.Context, t *asynq.Task) error {
	var payload DocumentThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		c.logger.Error("Failed to unmarshal payload",
			zap.Error(err),
			zap.ByteString("payload", t.Payload()),
		)
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	documentID, err := uuid.Parse(payload.DocumentID)
	if err != nil {
		c.logger.Error("Invalid document ID",
			zap.String("document_id", payload.DocumentID),
			zap.Error(err),
		)
		return fmt.Errorf("invalid document ID: %w", err)
	}

	c.logger.Info("Processing thumbnail task",
		zap.String("document_id", documentID.String()),
	)

	if err := c.thumbnailUC.ProcessDocument(ctx, documentID); err != nil {
		c.logger.Error("Failed to process thumbnail task",
			zap.String("document_id", documentID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// asynqLogger адаптер логгера для asynq
type asynqLogger struct {
	logger *zap.Logger
}

func newAsynqLogger(logger *zap.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.Named("asynq")}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(fmt.Sprint(args...))
}
