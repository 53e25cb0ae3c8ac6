package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/plastinin/mediashelf/internal/adapter/queue"
	"github.com/plastinin/mediashelf/internal/adapter/repository"
	"github.com/plastinin/mediashelf/internal/adapter/storage"
	"github.com/plastinin/mediashelf/internal/config"
	"github.com/plastinin/mediashelf/internal/imaging"
	"github.com/plastinin/mediashelf/internal/usecase"
	"github.com/plastinin/mediashelf/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Инициализируем логгер
	log := logger.Must("worker", cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	log.Info("Starting mediashelf worker",
		zap.Int("thumbnail_max_size", cfg.Thumbnail.MaxSize),
	)

	// Контекст для инициализации
	ctx := context.Background()

	// Инициализируем PostgreSQL
	dbPool, err := repository.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()
	log.Info("Connected to PostgreSQL")

	// Инициализируем S3 Storage
	s3Storage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		log.Fatal("Failed to connect to S3", zap.Error(err))
	}
	log.Info("Connected to S3",
		zap.String("endpoint", cfg.S3.Endpoint),
		zap.String("bucket", cfg.S3.Bucket),
	)

	// Инициализируем генератор миниатюр
	thumbnailer := imaging.NewThumbnailer(cfg.Thumbnail.MaxSize)

	// Инициализируем репозитории
	docRepo := repository.NewDocumentRepository(dbPool)

	// Инициализируем use cases
	thumbnailUC := usecase.NewThumbnailUseCase(docRepo, s3Storage, thumbnailer, log)

	// Инициализируем consumer
	consumer := queue.NewThumbnailConsumer(cfg.Redis, thumbnailUC, log)

	// Запускаем consumer в горутине
	go func() {
		if err := consumer.Start(); err != nil {
			log.Fatal("Failed to start consumer", zap.Error(err))
		}
	}()

	log.Info("Worker started, waiting for tasks...")

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker...")

	// Останавливаем consumer
	consumer.Stop()

	log.Info("Worker stopped")
}
