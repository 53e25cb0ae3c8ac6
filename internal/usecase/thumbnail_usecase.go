package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/plastinin/mediashelf/internal/domain"
	"go.uber.org/zap"
)

// ThumbnailUseCase бизнес-логика генерации миниатюр документов
type ThumbnailUseCase struct {
	docRepo     DocumentRepository
	fileStorage FileStorage
	thumbnailer Thumbnailer
	logger      *zap.Logger
}

// NewThumbnailUseCase создаёт новый экземпляр ThumbnailUseCase
func NewThumbnailUseCase(
	docRepo DocumentRepository,
	fileStorage FileStorage,
	thumbnailer Thumbnailer,
	logger *zap.Logger,
) *ThumbnailUseCase {
	return &ThumbnailUseCase{
		docRepo:     docRepo,
		fileStorage: fileStorage,
		thumbnailer: thumbnailer,
		logger:      logger,
	}
}

// ProcessDocument генерирует миниатюру для документа
func (uc *ThumbnailUseCase) ProcessDocument(ctx context.Context, documentID uuid.UUID) error {
	uc.logger.Info("Starting thumbnail generation",
		zap.String("document_id", documentID.String()),
	)

	// Получаем документ
	doc, err := uc.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	// Проверяем статус
	if doc.ThumbnailStatus.IsFinal() {
		uc.logger.Warn("Thumbnail already in final status, skipping",
			zap.String("document_id", documentID.String()),
			zap.String("status", doc.ThumbnailStatus.String()),
		)
		return nil
	}

	// Переводим в статус "processing"
	if err := doc.MarkThumbnailProcessing(); err != nil {
		return fmt.Errorf("failed to mark thumbnail as processing: %w", err)
	}
	if err := uc.docRepo.Update(ctx, doc); err != nil {
		return fmt.Errorf("failed to update thumbnail status: %w", err)
	}

	// Скачиваем файл из S3
	fileReader, err := uc.fileStorage.Download(ctx, doc.FileKey)
	if err != nil {
		uc.markFailed(ctx, doc)
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer fileReader.Close()

	fileData, err := io.ReadAll(fileReader)
	if err != nil {
		uc.markFailed(ctx, doc)
		return fmt.Errorf("failed to read file: %w", err)
	}

	uc.logger.Debug("File downloaded from storage",
		zap.String("document_id", documentID.String()),
		zap.Int("file_size", len(fileData)),
		zap.String("content_type", doc.ContentType.MIME()),
	)

	// Генерируем миниатюру
	thumbData, err := uc.thumbnailer.Generate(fileData, doc.ContentType)
	if err != nil {
		uc.markFailed(ctx, doc)
		return fmt.Errorf("failed to generate thumbnail: %w", err)
	}

	// Сохраняем миниатюру рядом с файлом
	thumbKey := doc.FileKey + ".thumb.png"
	err = uc.fileStorage.UploadAt(ctx, thumbKey, domain.ContentTypePNG.MIME(),
		bytes.NewReader(thumbData), int64(len(thumbData)))
	if err != nil {
		uc.markFailed(ctx, doc)
		return fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	// Успешно завершаем
	if err := doc.MarkThumbnailReady(thumbKey); err != nil {
		return fmt.Errorf("failed to mark thumbnail as ready: %w", err)
	}
	if err := uc.docRepo.Update(ctx, doc); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	uc.logger.Info("Thumbnail generated successfully",
		zap.String("document_id", documentID.String()),
		zap.String("thumbnail_key", thumbKey),
		zap.Int("thumbnail_size", len(thumbData)),
	)

	return nil
}

// markFailed переводит миниатюру в статус "ошибка" с логированием
func (uc *ThumbnailUseCase) markFailed(ctx context.Context, doc *domain.Document) {
	if err := doc.MarkThumbnailFailed(); err != nil {
		uc.logger.Error("Failed to mark thumbnail as failed",
			zap.String("document_id", doc.ID.String()),
			zap.Error(err),
		)
		return
	}
	if err := uc.docRepo.Update(ctx, doc); err != nil {
		uc.logger.Error("Failed to update document status",
			zap.String("document_id", doc.ID.String()),
			zap.Error(err),
		)
	}
}
