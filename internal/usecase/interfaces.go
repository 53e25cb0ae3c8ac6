package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/plastinin/mediashelf/internal/domain"
)

// DocumentRepository интерфейс для работы с хранилищем документов
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.DocumentFilter, pagination domain.Pagination) (*domain.DocumentListResult, error)
}

// FileStorage интерфейс для работы с файловым хранилищем (S3)
type FileStorage interface {
	Upload(ctx context.Context, fileName string, contentType string, reader io.Reader, size int64) (fileKey string, err error)
	UploadAt(ctx context.Context, fileKey string, contentType string, reader io.Reader, size int64) error
	Download(ctx context.Context, fileKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, fileKey string) error
	GetURL(ctx context.Context, fileKey string) (string, error)
}

// ContentDetector интерфейс определения типа контента
type ContentDetector interface {
	FromBytes(data []byte) domain.ContentType
	FromBytesWithFallback(data []byte, extension string) domain.ContentType
	FromExtension(extension string) domain.ContentType
}

// Thumbnailer интерфейс генерации миниатюр
type Thumbnailer interface {
	Generate(data []byte, contentType domain.ContentType) ([]byte, error)
}

// ThumbnailQueue интерфейс для постановки задач генерации миниатюр
type ThumbnailQueue interface {
	Enqueue(ctx context.Context, documentID uuid.UUID) error
}
