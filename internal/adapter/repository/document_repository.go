package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plastinin/mediashelf/internal/domain"
)

// DocumentRepository реализация репозитория документов для PostgreSQL
type DocumentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository создаёт новый экземпляр DocumentRepository
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// Create создаёт новый документ в БД
func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (id, file_key, file_name, content_type, size, thumbnail_key, thumbnail_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		doc.ID,
		doc.FileKey,
		doc.FileName,
		doc.ContentType.MIME(),
		doc.Size,
		nullableString(doc.ThumbnailKey),
		doc.ThumbnailStatus,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// GetByID возвращает документ по ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	query := `
		SELECT id, file_key, file_name, content_type, size, thumbnail_key, thumbnail_status, created_at, updated_at
		FROM documents
		WHERE id = $1
	`

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// Update обновляет документ в БД
func (r *DocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	query := `
		UPDATE documents
		SET file_name = $2, thumbnail_key = $3, thumbnail_status = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		doc.ID,
		doc.FileName,
		nullableString(doc.ThumbnailKey),
		doc.ThumbnailStatus,
		doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}

	return nil
}

// Delete удаляет документ из БД
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}

	return nil
}

// List возвращает список документов с пагинацией и фильтрацией
func (r *DocumentRepository) List(ctx context.Context, filter domain.DocumentFilter, pagination domain.Pagination) (*domain.DocumentListResult, error) {
	// Базовый запрос
	baseQuery := `FROM documents WHERE 1=1`
	args := []any{}
	argIndex := 1

	// Фильтр по типу контента
	if filter.ContentType != nil {
		baseQuery += fmt.Sprintf(" AND content_type = $%d", argIndex)
		args = append(args, filter.ContentType.MIME())
		argIndex++
	}

	// Фильтр "только изображения"
	if filter.ImagesOnly {
		baseQuery += " AND content_type LIKE 'image/%'"
	}

	// Запрос на подсчёт общего количества
	countQuery := "SELECT COUNT(*) " + baseQuery
	var total int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	// Запрос на получение данных
	selectQuery := fmt.Sprintf(`
		SELECT id, file_key, file_name, content_type, size, thumbnail_key, thumbnail_status, created_at, updated_at
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIndex, argIndex+1)

	args = append(args, pagination.Limit(), pagination.Offset())

	rows, err := r.pool.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return &domain.DocumentListResult{
		Documents:  docs,
		Total:      total,
		Pagination: pagination,
	}, nil
}

// scanDocument читает документ из строки результата
func scanDocument(row pgx.Row) (*domain.Document, error) {
	doc := &domain.Document{}
	var contentType string
	var thumbnailKey *string // Указатель для NULL

	err := row.Scan(
		&doc.ID,
		&doc.FileKey,
		&doc.FileName,
		&contentType,
		&doc.Size,
		&thumbnailKey,
		&doc.ThumbnailStatus,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.ContentType = domain.ParseContentType(contentType)
	if thumbnailKey != nil {
		doc.ThumbnailKey = *thumbnailKey
	}

	return doc, nil
}

// nullableString конвертирует пустую строку в NULL
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
