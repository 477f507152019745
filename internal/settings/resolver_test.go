package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/settings"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SubstitutesDefaults(t *testing.T) {
	ctx := context.Background()
	users := inmem.NewUserStore()
	sources := inmem.NewSourceStore()

	userID, err := users.Create(ctx, domain.User{Name: "병민", Email: "a@b.c"})
	require.NoError(t, err)

	resolver := settings.NewResolver(users, sources)
	resolved, err := resolver.Resolve(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, domain.ToneNeutral, resolved.Prefs.Tone)
	assert.Equal(t, domain.LengthMedium, resolved.Prefs.Length)
	assert.Equal(t, domain.FormatClassic, resolved.Prefs.Format)
	assert.Equal(t, 10, resolved.Prefs.MaxArticles)
	assert.Equal(t, "gpt-4", resolved.Prefs.Model)
	assert.Equal(t, 0.7, resolved.Prefs.Temperature)
	assert.Equal(t, 2000, resolved.Prefs.MaxTokens)
}

func TestResolve_KeepsStoredPreferences(t *testing.T) {
	ctx := context.Background()
	users := inmem.NewUserStore()
	sources := inmem.NewSourceStore()

	userID, err := users.Create(ctx, domain.User{
		Name:  "병민",
		Email: "a@b.c",
		Prefs: domain.Preferences{
			Tone:           domain.ToneFormal,
			MaxArticles:    3,
			IncludeSummary: true,
		},
	})
	require.NoError(t, err)

	resolved, err := settings.NewResolver(users, sources).Resolve(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, domain.ToneFormal, resolved.Prefs.Tone)
	assert.Equal(t, 3, resolved.Prefs.MaxArticles)
	assert.True(t, resolved.Prefs.IncludeSummary)
	// unset fields still get defaults
	assert.Equal(t, domain.LengthMedium, resolved.Prefs.Length)
}

func TestResolve_FiltersInactiveSources(t *testing.T) {
	ctx := context.Background()
	users := inmem.NewUserStore()
	sources := inmem.NewSourceStore()

	userID, err := users.Create(ctx, domain.User{Name: "병민", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = sources.Create(ctx, domain.ContentSource{UserID: userID, Name: "GeekNews", Category: "tech"})
	require.NoError(t, err)
	_, err = sources.Create(ctx, domain.ContentSource{UserID: userID, Name: "Paused", Category: "tech", Status: domain.SourcePaused})
	require.NoError(t, err)

	resolved, err := settings.NewResolver(users, sources).Resolve(ctx, userID)
	require.NoError(t, err)

	require.Len(t, resolved.Sources, 1)
	assert.Equal(t, "GeekNews", resolved.Sources[0].Name)
}

func TestResolve_UnknownUser(t *testing.T) {
	resolver := settings.NewResolver(inmem.NewUserStore(), inmem.NewSourceStore())

	_, err := resolver.Resolve(context.Background(), uuid.New())
	require.Error(t, err)

	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}
