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

type NewsletterStore struct {
	db *pgxpool.Pool
}

func NewNewsletterStore(pool *ConnectionPool) *NewsletterStore {
	return &NewsletterStore{db: pool.conn}
}

func (s *NewsletterStore) Save(ctx context.Context, newsletter domain.Newsletter) (uuid.UUID, error) {
	if newsletter.ID == uuid.Nil {
		newsletter.ID = uuid.New()
	}
	if newsletter.CreatedAt.IsZero() {
		newsletter.CreatedAt = time.Now()
	}

	cmd := `
        INSERT INTO newsletters (id, user_id, title, content, topics, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		newsletter.ID,
		newsletter.UserID,
		newsletter.Title,
		newsletter.Content,
		newsletter.Topics,
		newsletter.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert newsletter: %w", err)
	}

	return id, nil
}

func (s *NewsletterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Newsletter, error) {
	cmd := `
        SELECT id, user_id, title, content, topics, created_at
        FROM newsletters
        WHERE id = $1;
    `
	var n domain.Newsletter
	err := s.db.QueryRow(ctx, cmd, id).Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Content,
		&n.Topics,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("newsletter not found")
		}
		return nil, fmt.Errorf("failed to query newsletter: %w", err)
	}

	return &n, nil
}

func (s *NewsletterStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Newsletter, error) {
	cmd := `
        SELECT id, user_id, title, content, topics, created_at
        FROM newsletters
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := s.db.Query(ctx, cmd, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query newsletters: %w", err)
	}
	defer rows.Close()

	var newsletters []domain.Newsletter
	for rows.Next() {
		var n domain.Newsletter
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Topics, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan newsletter: %w", err)
		}
		newsletters = append(newsletters, n)
	}

	return newsletters, rows.Err()
}

func (s *NewsletterStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM newsletters WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete newsletter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("newsletter not found")
	}
	return nil
}
