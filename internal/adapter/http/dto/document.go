package dto

import (
	"time"

	"github.com/plastinin/mediashelf/internal/domain"
)

// DocumentResponse описание документа в ответе API
type DocumentResponse struct {
	ID              string    `json:"id"`
	FileName        string    `json:"file_name"`
	ContentType     string    `json:"content_type"` // Канонический MIME тип
	Extension       string    `json:"extension"`    // Каноническое расширение
	Size            int64     `json:"size"`
	IsImage         bool      `json:"is_image"`
	ThumbnailStatus string    `json:"thumbnail_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DocumentFromDomain конвертирует доменную модель в DTO
func DocumentFromDomain(doc *domain.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:              doc.ID.String(),
		FileName:        doc.FileName,
		ContentType:     doc.ContentType.MIME(),
		Extension:       doc.ContentType.Extension(),
		Size:            doc.Size,
		IsImage:         doc.ContentType.IsImage(),
		ThumbnailStatus: doc.ThumbnailStatus.String(),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

// DocumentListResponse список документов с пагинацией
type DocumentListResponse struct {
	Documents []*DocumentResponse `json:"documents"`
	Total     int                 `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// DocumentListFromDomain конвертирует результат листинга в DTO
func DocumentListFromDomain(result *domain.DocumentListResult) *DocumentListResponse {
	docs := make([]*DocumentResponse, 0, len(result.Documents))
	for _, doc := range result.Documents {
		docs = append(docs, DocumentFromDomain(doc))
	}

	return &DocumentListResponse{
		Documents: docs,
		Total:     result.Total,
		Page:      result.Pagination.Page,
		PageSize:  result.Pagination.PageSize,
	}
}
