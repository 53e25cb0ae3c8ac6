package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ошибки домена
var (
	ErrDocumentNotFound      = errors.New("document not found")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrInvalidThumbnailState = errors.New("invalid thumbnail status")
	ErrThumbnailNotReady     = errors.New("thumbnail is not ready")
	ErrEmptyFileKey          = errors.New("file key cannot be empty")
)

// Document представляет файл на полке: комикс, книгу, документ или изображение
type Document struct {
	ID              uuid.UUID       `json:"id"`
	FileKey         string          `json:"file_key"`  // Ключ файла в S3
	FileName        string          `json:"file_name"` // Оригинальное имя файла
	ContentType     ContentType     `json:"content_type"`
	Size            int64           `json:"size"`
	ThumbnailKey    string          `json:"thumbnail_key,omitempty"` // Ключ миниатюры в S3
	ThumbnailStatus ThumbnailStatus `json:"thumbnail_status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewDocument создаёт новый документ.
// Тип контента должен быть определён заранее (Unknown не принимается).
func NewDocument(fileKey, fileName string, contentType ContentType, size int64) (*Document, error) {
	if fileKey == "" {
		return nil, ErrEmptyFileKey
	}
	if contentType == ContentTypeUnknown || !contentType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}

	now := time.Now()

	return &Document{
		ID:              uuid.New(),
		FileKey:         fileKey,
		FileName:        fileName,
		ContentType:     contentType,
		Size:            size,
		ThumbnailStatus: initialThumbnailStatus(contentType),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// initialThumbnailStatus определяет стартовый статус миниатюры.
// Миниатюры генерируются только для изображений и PDF, архивы не читаем.
func initialThumbnailStatus(contentType ContentType) ThumbnailStatus {
	if contentType.IsImage() || contentType == ContentTypePDF {
		return ThumbnailStatusPending
	}
	return ThumbnailStatusNone
}

// DownloadName возвращает имя файла для отдачи клиенту.
// Если оригинальное имя пустое, оно строится из ID и канонического расширения.
func (d *Document) DownloadName() string {
	if d.FileName != "" {
		return d.FileName
	}
	ext := d.ContentType.Extension()
	if ext == "" {
		return d.ID.String()
	}
	return d.ID.String() + "." + ext
}

// NeedsThumbnail проверяет, ожидает ли документ генерации миниатюры
func (d *Document) NeedsThumbnail() bool {
	return d.ThumbnailStatus == ThumbnailStatusPending
}

// MarkThumbnailProcessing переводит миниатюру в статус "генерируется"
func (d *Document) MarkThumbnailProcessing() error {
	if d.ThumbnailStatus != ThumbnailStatusPending {
		return ErrInvalidThumbnailState
	}
	d.ThumbnailStatus = ThumbnailStatusProcessing
	d.UpdatedAt = time.Now()
	return nil
}

// MarkThumbnailReady переводит миниатюру в статус "готова"
func (d *Document) MarkThumbnailReady(thumbnailKey string) error {
	if d.ThumbnailStatus != ThumbnailStatusProcessing {
		return ErrInvalidThumbnailState
	}
	d.ThumbnailKey = thumbnailKey
	d.ThumbnailStatus = ThumbnailStatusReady
	d.UpdatedAt = time.Now()
	return nil
}

// MarkThumbnailFailed переводит миниатюру в статус "ошибка"
func (d *Document) MarkThumbnailFailed() error {
	if d.ThumbnailStatus != ThumbnailStatusProcessing && d.ThumbnailStatus != ThumbnailStatusPending {
		return ErrInvalidThumbnailState
	}
	d.ThumbnailStatus = ThumbnailStatusFailed
	d.UpdatedAt = time.Now()
	return nil
}
