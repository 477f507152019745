package newsletter

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/completion"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/prompt"
	"github.com/jeonbyeongmin/canny-sub000/internal/settings"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
)

// AppliedSettings is the compact summary of the personalization that went
// into a generation, echoed back to the caller.
type AppliedSettings struct {
	Tone        domain.Tone   `json:"tone"`
	Length      domain.Length `json:"length"`
	Format      domain.Format `json:"format"`
	SourceCount int           `json:"sourceCount"`
}

type GenerateResult struct {
	Newsletter          domain.Newsletter `json:"newsletter"`
	PersonalizationUsed bool              `json:"personalizationUsed"`
	Settings            *AppliedSettings  `json:"settings,omitempty"`
}

// Generator runs the generation pipeline: validate, resolve settings,
// compose the prompt, call the completion provider, persist the result.
// Each stage runs after the previous succeeds; any failure short-circuits
// and nothing is persisted.
type Generator struct {
	users    storage.UserReader
	resolver *settings.Resolver
	composer *prompt.Composer
	client   completion.Client
	store    storage.NewsletterStore
}

func NewGenerator(
	users storage.UserReader,
	resolver *settings.Resolver,
	composer *prompt.Composer,
	client completion.Client,
	store storage.NewsletterStore,
) *Generator {
	return &Generator{
		users:    users,
		resolver: resolver,
		composer: composer,
		client:   client,
		store:    store,
	}
}

func (g *Generator) Generate(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (*GenerateResult, error) {
	topics := req.CleanTopics()
	if len(topics) == 0 {
		return nil, apperr.NewValidation("at least one topic is required")
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasOpenAIKey() {
		return nil, apperr.NewUnauthorized("openai api key is not configured")
	}

	prefs := user.Prefs.WithDefaults()

	var userPrompt string
	var applied *AppliedSettings
	if req.UsePersonalization {
		resolved, err := g.resolver.Resolve(ctx, userID)
		if err != nil {
			return nil, err
		}
		prefs = resolved.Prefs
		userPrompt = g.composer.Personalized(resolved.User, resolved.Prefs, resolved.Sources, topics, req.AdditionalInstructions)
		applied = &AppliedSettings{
			Tone:        resolved.Prefs.Tone,
			Length:      resolved.Prefs.Length,
			Format:      resolved.Prefs.Format,
			SourceCount: len(resolved.Sources),
		}
	} else {
		userPrompt = g.composer.Plain(topics, req.AdditionalInstructions)
	}

	systemPrompt := prefs.CustomPrompt
	if systemPrompt == "" {
		systemPrompt = g.composer.SystemPrompt()
	}

	slog.Debug("Generating newsletter",
		"user_id", userID,
		"topics", len(topics),
		"personalized", req.UsePersonalization,
		"model", prefs.Model,
	)

	resp, err := g.client.Complete(ctx, user.OpenAIKey, completion.Request{
		Model: prefs.Model,
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: systemPrompt},
			{Role: completion.RoleUser, Content: userPrompt},
		},
		Temperature: prefs.Temperature,
		MaxTokens:   prefs.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("completion call: %w", err)
	}

	content := resp.Text()
	if strings.TrimSpace(content) == "" {
		return nil, apperr.NewEmptyGeneration("provider returned no content")
	}

	result := domain.Newsletter{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     extractTitle(content, topics),
		Content:   content,
		Topics:    strings.Join(topics, ", "),
		CreatedAt: time.Now(),
	}

	if _, err := g.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("save newsletter: %w", err)
	}

	slog.Info("Newsletter generated", "id", result.ID, "title", result.Title, "user_id", userID)

	return &GenerateResult{
		Newsletter:          result,
		PersonalizationUsed: req.UsePersonalization,
		Settings:            applied,
	}, nil
}

var headingRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// extractTitle scans for the first markdown level-1 heading. Best-effort:
// falls back to "{first topic} 뉴스레터" when there is none.
func extractTitle(content string, topics []string) string {
	if m := headingRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return topics[0] + " 뉴스레터"
}
