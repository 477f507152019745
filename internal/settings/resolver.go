package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
)

// Resolved is a fully-populated view of a user's generation settings:
// stored preferences merged with defaults, plus the active content sources.
type Resolved struct {
	User    *domain.User
	Prefs   domain.Preferences
	Sources []domain.ContentSource
}

type Resolver struct {
	users   storage.UserReader
	sources storage.SourceReader
}

func NewResolver(users storage.UserReader, sources storage.SourceReader) *Resolver {
	return &Resolver{
		users:   users,
		sources: sources,
	}
}

// Resolve loads the user and returns settings with defaults substituted for
// anything unset. Only sources with status "active" are included.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (*Resolved, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	all, err := r.sources.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var active []domain.ContentSource
	for _, src := range all {
		if src.Status == domain.SourceActive {
			active = append(active, src)
		}
	}

	return &Resolved{
		User:    user,
		Prefs:   user.Prefs.WithDefaults(),
		Sources: active,
	}, nil
}
