package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/plastinin/mediashelf/internal/domain"
	"go.uber.org/zap"
)

// Заголовка файла достаточно для определения типа по сигнатуре
const detectHeaderSize = 8192

// DocumentUseCase бизнес-логика работы с документами
type DocumentUseCase struct {
	docRepo     DocumentRepository
	fileStorage FileStorage
	detector    ContentDetector
	queue       ThumbnailQueue
	logger      *zap.Logger
}

// NewDocumentUseCase создаёт новый экземпляр DocumentUseCase
func NewDocumentUseCase(
	docRepo DocumentRepository,
	fileStorage FileStorage,
	detector ContentDetector,
	queue ThumbnailQueue,
	logger *zap.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		docRepo:     docRepo,
		fileStorage: fileStorage,
		detector:    detector,
		queue:       queue,
		logger:      logger,
	}
}

// Upload загружает документ: определяет тип контента по сигнатуре байтов
// (с откатом на расширение имени файла), сохраняет файл в S3 и ставит
// задачу на генерацию миниатюры.
func (uc *DocumentUseCase) Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error) {
	// Читаем заголовок для сниффинга, не теряя прочитанные байты
	header := make([]byte, detectHeaderSize)
	n, err := io.ReadFull(input.FileReader, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	extension := strings.TrimPrefix(filepath.Ext(input.FileName), ".")
	contentType := uc.detector.FromBytesWithFallback(header, extension)
	if contentType == domain.ContentTypeUnknown {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, input.FileName)
	}

	// Склеиваем заголовок с остатком файла
	reader := io.MultiReader(bytes.NewReader(header), input.FileReader)

	fileKey, err := uc.fileStorage.Upload(ctx, input.FileName, contentType.MIME(), reader, input.FileSize)
	if err != nil {
		uc.logger.Error("Failed to upload file to storage",
			zap.String("file_name", input.FileName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	uc.logger.Debug("File uploaded to storage",
		zap.String("file_key", fileKey),
		zap.String("content_type", contentType.MIME()),
	)

	// Создаём документ
	doc, err := domain.NewDocument(fileKey, input.FileName, contentType, input.FileSize)
	if err != nil {
		// Удаляем загруженный файл при ошибке
		_ = uc.fileStorage.Delete(ctx, fileKey)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	// Сохраняем документ в БД
	if err := uc.docRepo.Create(ctx, doc); err != nil {
		// Удаляем загруженный файл при ошибке
		_ = uc.fileStorage.Delete(ctx, fileKey)
		uc.logger.Error("Failed to save document to database",
			zap.String("document_id", doc.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	// Ставим задачу на генерацию миниатюры
	if doc.NeedsThumbnail() {
		if err := uc.queue.Enqueue(ctx, doc.ID); err != nil {
			uc.logger.Error("Failed to enqueue thumbnail task",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err),
			)
			// Не возвращаем ошибку — документ создан, можно retry позже
		}
	}

	uc.logger.Info("Document uploaded successfully",
		zap.String("document_id", doc.ID.String()),
		zap.String("file_name", input.FileName),
		zap.String("content_type", contentType.MIME()),
		zap.Int64("size", input.FileSize),
	)

	return doc, nil
}

// GetByID возвращает документ по ID
func (uc *DocumentUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Download возвращает содержимое файла документа вместе с его описанием
func (uc *DocumentUseCase) Download(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := uc.fileStorage.Download(ctx, doc.FileKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download file: %w", err)
	}

	return doc, reader, nil
}

// DownloadThumbnail возвращает миниатюру документа
func (uc *DocumentUseCase) DownloadThumbnail(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.ThumbnailStatus != domain.ThumbnailStatusReady || doc.ThumbnailKey == "" {
		return nil, domain.ErrThumbnailNotReady
	}

	reader, err := uc.fileStorage.Download(ctx, doc.ThumbnailKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download thumbnail: %w", err)
	}

	return reader, nil
}

// List возвращает список документов
func (uc *DocumentUseCase) List(ctx context.Context, filter domain.DocumentFilter, pagination domain.Pagination) (*domain.DocumentListResult, error) {
	return uc.docRepo.List(ctx, filter, pagination)
}

// Delete удаляет документ вместе с файлом и миниатюрой
func (uc *DocumentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Удаляем файл из S3
	if err := uc.fileStorage.Delete(ctx, doc.FileKey); err != nil {
		uc.logger.Warn("Failed to delete file from storage",
			zap.String("document_id", id.String()),
			zap.String("file_key", doc.FileKey),
			zap.Error(err),
		)
		// Продолжаем удаление документа
	}

	// Удаляем миниатюру, если она есть
	if doc.ThumbnailKey != "" {
		if err := uc.fileStorage.Delete(ctx, doc.ThumbnailKey); err != nil {
			uc.logger.Warn("Failed to delete thumbnail from storage",
				zap.String("document_id", id.String()),
				zap.String("thumbnail_key", doc.ThumbnailKey),
				zap.Error(err),
			)
		}
	}

	// Удаляем документ из БД
	if err := uc.docRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	uc.logger.Info("Document deleted successfully",
		zap.String("document_id", id.String()),
	)

	return nil
}
