package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
)

const uniqueViolation = "23505"

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(pool *ConnectionPool) *UserStore {
	return &UserStore{db: pool.conn}
}

func (s *UserStore) Create(ctx context.Context, user domain.User) (uuid.UUID, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	prefsJSON, err := json.Marshal(user.Prefs)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	cmd := `
        INSERT INTO users (id, name, email, password_hash, openai_key, prefs, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.OpenAIKey,
		prefsJSON,
		user.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.UUID{}, apperr.NewConflict("email already registered")
		}
		return uuid.UUID{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return id, nil
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	cmd := `
        SELECT id, name, email, password_hash, openai_key, prefs, created_at
        FROM users
        WHERE id = $1;
    `
	return s.scanUser(s.db.QueryRow(ctx, cmd, id))
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	cmd := `
        SELECT id, name, email, password_hash, openai_key, prefs, created_at
        FROM users
        WHERE email = $1;
    `
	return s.scanUser(s.db.QueryRow(ctx, cmd, email))
}

func (s *UserStore) UpdatePrefs(ctx context.Context, id uuid.UUID, prefs domain.Preferences) error {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	cmd := `UPDATE users SET prefs = $2 WHERE id = $1;`
	tag, err := s.db.Exec(ctx, cmd, id, prefsJSON)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("user not found")
	}
	return nil
}

func (s *UserStore) UpdateOpenAIKey(ctx context.Context, id uuid.UUID, key string) error {
	cmd := `UPDATE users SET openai_key = $2 WHERE id = $1;`
	tag, err := s.db.Exec(ctx, cmd, id, key)
	if err != nil {
		return fmt.Errorf("failed to update api key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("user not found")
	}
	return nil
}

func (s *UserStore) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var prefsJSON []byte

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.OpenAIKey,
		&prefsJSON,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("user not found")
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if len(prefsJSON) > 0 {
		if err := json.Unmarshal(prefsJSON, &user.Prefs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
	}

	return &user, nil
}
