package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
)

// In-memory stores, one per entity like the pg layer. Used by tests and
// local runs without a database.

type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]domain.User)}
}

func (s *UserStore) Create(ctx context.Context, user domain.User) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return uuid.UUID{}, apperr.NewConflict("email already registered")
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	return user.ID, nil
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperr.NewNotFound("user not found")
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperr.NewNotFound("user not found")
}

func (s *UserStore) UpdatePrefs(ctx context.Context, id uuid.UUID, prefs domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return apperr.NewNotFound("user not found")
	}
	user.Prefs = prefs
	s.users[id] = user
	return nil
}

func (s *UserStore) UpdateOpenAIKey(ctx context.Context, id uuid.UUID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return apperr.NewNotFound("user not found")
	}
	user.OpenAIKey = key
	s.users[id] = user
	return nil
}

type SourceStore struct {
	mu      sync.RWMutex
	sources map[uuid.UUID]domain.ContentSource
}

func NewSourceStore() *SourceStore {
	return &SourceStore{sources: make(map[uuid.UUID]domain.ContentSource)}
}

func (s *SourceStore) Create(ctx context.Context, source domain.ContentSource) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if source.ID == uuid.Nil {
		source.ID = uuid.New()
	}
	if source.Status == "" {
		source.Status = domain.SourceActive
	}
	if source.CreatedAt.IsZero() {
		source.CreatedAt = time.Now()
	}
	s.sources[source.ID] = source
	return source.ID, nil
}

func (s *SourceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentSource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	source, ok := s.sources[id]
	if !ok {
		return nil, apperr.NewNotFound("content source not found")
	}
	return &source, nil
}

func (s *SourceStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentSource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sources []domain.ContentSource
	for _, src := range s.sources {
		if src.UserID == userID {
			sources = append(sources, src)
		}
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].CreatedAt.Before(sources[j].CreatedAt)
	})
	return sources, nil
}

func (s *SourceStore) Update(ctx context.Context, source domain.ContentSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sources[source.ID]; !ok {
		return apperr.NewNotFound("content source not found")
	}
	s.sources[source.ID] = source
	return nil
}

func (s *SourceStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sources[id]; !ok {
		return apperr.NewNotFound("content source not found")
	}
	delete(s.sources, id)
	return nil
}

type NewsletterStore struct {
	mu          sync.RWMutex
	newsletters map[uuid.UUID]domain.Newsletter
}

func NewNewsletterStore() *NewsletterStore {
	return &NewsletterStore{newsletters: make(map[uuid.UUID]domain.Newsletter)}
}

func (s *NewsletterStore) Save(ctx context.Context, newsletter domain.Newsletter) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newsletter.ID == uuid.Nil {
		newsletter.ID = uuid.New()
	}
	if newsletter.CreatedAt.IsZero() {
		newsletter.CreatedAt = time.Now()
	}
	s.newsletters[newsletter.ID] = newsletter
	return newsletter.ID, nil
}

func (s *NewsletterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Newsletter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.newsletters[id]
	if !ok {
		return nil, apperr.NewNotFound("newsletter not found")
	}
	return &n, nil
}

func (s *NewsletterStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Newsletter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var newsletters []domain.Newsletter
	for _, n := range s.newsletters {
		if n.UserID == userID {
			newsletters = append(newsletters, n)
		}
	}
	sort.Slice(newsletters, func(i, j int) bool {
		return newsletters[i].CreatedAt.After(newsletters[j].CreatedAt)
	})
	return newsletters, nil
}

func (s *NewsletterStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.newsletters[id]; !ok {
		return apperr.NewNotFound("newsletter not found")
	}
	delete(s.newsletters, id)
	return nil
}
