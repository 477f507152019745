package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
)

type SourceStore struct {
	db *pgxpool.Pool
}

func NewSourceStore(pool *ConnectionPool) *SourceStore {
	return &SourceStore{db: pool.conn}
}

func (s *SourceStore) Create(ctx context.Context, source domain.ContentSource) (uuid.UUID, error) {
	if source.ID == uuid.Nil {
		source.ID = uuid.New()
	}
	if source.Status == "" {
		source.Status = domain.SourceActive
	}
	if source.CreatedAt.IsZero() {
		source.CreatedAt = time.Now()
	}

	cmd := `
        INSERT INTO content_sources (id, user_id, name, category, description, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		source.ID,
		source.UserID,
		source.Name,
		source.Category,
		source.Description,
		source.Status,
		source.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert content source: %w", err)
	}

	return id, nil
}

func (s *SourceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentSource, error) {
	cmd := `
        SELECT id, user_id, name, category, description, status, created_at
        FROM content_sources
        WHERE id = $1;
    `
	var source domain.ContentSource
	err := s.db.QueryRow(ctx, cmd, id).Scan(
		&source.ID,
		&source.UserID,
		&source.Name,
		&source.Category,
		&source.Description,
		&source.Status,
		&source.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("content source not found")
		}
		return nil, fmt.Errorf("failed to query content source: %w", err)
	}

	return &source, nil
}

func (s *SourceStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentSource, error) {
	cmd := `
        SELECT id, user_id, name, category, description, status, created_at
        FROM content_sources
        WHERE user_id = $1
        ORDER BY created_at;
    `
	rows, err := s.db.Query(ctx, cmd, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query content sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.ContentSource
	for rows.Next() {
		var source domain.ContentSource
		if err := rows.Scan(
			&source.ID,
			&source.UserID,
			&source.Name,
			&source.Category,
			&source.Description,
			&source.Status,
			&source.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan content source: %w", err)
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

func (s *SourceStore) Update(ctx context.Context, source domain.ContentSource) error {
	cmd := `
        UPDATE content_sources
        SET name = $2, category = $3, description = $4, status = $5
        WHERE id = $1;
    `
	tag, err := s.db.Exec(ctx, cmd, source.ID, source.Name, source.Category, source.Description, source.Status)
	if err != nil {
		return fmt.Errorf("failed to update content source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("content source not found")
	}
	return nil
}

func (s *SourceStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM content_sources WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("content source not found")
	}
	return nil
}
