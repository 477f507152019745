package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
)

// UserReader is the read-side the pipeline depends on.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type UserStore interface {
	UserReader
	Create(ctx context.Context, user domain.User) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePrefs(ctx context.Context, id uuid.UUID, prefs domain.Preferences) error
	UpdateOpenAIKey(ctx context.Context, id uuid.UUID, key string) error
}

// SourceReader lists a user's subscribed content sources.
type SourceReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentSource, error)
}

type SourceStore interface {
	SourceReader
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentSource, error)
	Create(ctx context.Context, source domain.ContentSource) (uuid.UUID, error)
	Update(ctx context.Context, source domain.ContentSource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewsletterReader loads persisted newsletters.
type NewsletterReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Newsletter, error)
}

type NewsletterStore interface {
	NewsletterReader
	Save(ctx context.Context, newsletter domain.Newsletter) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Newsletter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
