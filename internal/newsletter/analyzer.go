package newsletter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/completion"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage"
)

const (
	analysisTemperature = 0.5

	analysisSystemPrompt = "당신은 콘텐츠 분석 전문가입니다. 뉴스레터를 분석해 지정된 JSON 형식으로만 응답합니다."
)

// Analyzer sends an existing newsletter back through the completion
// provider with an analysis instruction and parses the keyed result.
// Nothing is persisted.
type Analyzer struct {
	users       storage.UserReader
	newsletters storage.NewsletterReader
	client      completion.Client
}

func NewAnalyzer(users storage.UserReader, newsletters storage.NewsletterReader, client completion.Client) *Analyzer {
	return &Analyzer{
		users:       users,
		newsletters: newsletters,
		client:      client,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, userID, newsletterID uuid.UUID) (*domain.AnalysisResult, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasOpenAIKey() {
		return nil, apperr.NewUnauthorized("openai api key is not configured")
	}

	target, err := a.newsletters.GetByID(ctx, newsletterID)
	if err != nil {
		return nil, err
	}
	if target.UserID != userID {
		return nil, apperr.NewForbidden("newsletter belongs to another user")
	}

	prefs := user.Prefs.WithDefaults()

	slog.Debug("Analyzing newsletter", "id", newsletterID, "user_id", userID)

	resp, err := a.client.Complete(ctx, user.OpenAIKey, completion.Request{
		Model: prefs.Model,
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: analysisSystemPrompt},
			{Role: completion.RoleUser, Content: analysisUserPrompt(target)},
		},
		Temperature:    analysisTemperature,
		MaxTokens:      prefs.MaxTokens,
		ResponseFormat: completion.JSONResponseFormat(),
	})
	if err != nil {
		return nil, fmt.Errorf("completion call: %w", err)
	}

	return parseAnalysis(resp.Text())
}

func analysisUserPrompt(n *domain.Newsletter) string {
	var b strings.Builder

	b.WriteString("다음 뉴스레터를 분석해주세요.\n\n")
	fmt.Fprintf(&b, "제목: %s\n\n", n.Title)
	fmt.Fprintf(&b, "내용:\n%s\n\n", n.Content)
	b.WriteString("아래 JSON 형식으로만 응답해주세요:\n")
	b.WriteString(`{
  "keywords": ["핵심 키워드 5개"],
  "sentiment": "긍정적 | 부정적 | 중립적",
  "summary": "한 문단 요약",
  "relatedTopics": ["관련 주제 목록"],
  "timeliness": "높음 | 보통 | 낮음",
  "commentary": "분석 코멘트"
}`)

	return b.String()
}

func parseAnalysis(text string) (*domain.AnalysisResult, error) {
	cleaned := stripCodeFence(text)
	if cleaned == "" {
		return nil, apperr.NewMalformedResponse("empty analysis response")
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, apperr.NewMalformedResponseWrap("analysis response is not valid JSON", err)
	}

	if len(result.Keywords) == 0 || result.Sentiment == "" || result.Summary == "" || result.Timeliness == "" {
		return nil, apperr.NewMalformedResponse("analysis response is missing required fields")
	}

	return &result, nil
}

// stripCodeFence unwraps a ```json ... ``` block some models insist on
// returning despite the JSON response format.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
