package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/auth"
	"github.com/jeonbyeongmin/canny-sub000/internal/completion"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/jeonbyeongmin/canny-sub000/internal/newsletter"
	"github.com/jeonbyeongmin/canny-sub000/internal/prompt"
	"github.com/jeonbyeongmin/canny-sub000/internal/router"
	"github.com/jeonbyeongmin/canny-sub000/internal/settings"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage/inmem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedClient struct {
	text string
	err  error
}

func (s *scriptedClient) Complete(ctx context.Context, apiKey string, req completion.Request) (*completion.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &completion.Response{
		Choices: []completion.Choice{{Message: completion.Message{Role: "assistant", Content: s.text}}},
	}, nil
}

type apiFixture struct {
	e      *echo.Echo
	client *scriptedClient
	token  string
}

func newAPIFixture(t *testing.T, withKey bool) *apiFixture {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	users := inmem.NewUserStore()
	sources := inmem.NewSourceStore()
	newsletters := inmem.NewNewsletterStore()
	issuer := auth.NewJWTIssuer(auth.JWTConfig{Secret: "test-secret", Issuer: "newsletter-api", TTL: time.Hour})

	client := &scriptedClient{text: "# 통합 테스트 뉴스레터\n본문"}
	composer := prompt.NewComposer(prompt.DefaultTemplates())
	resolver := settings.NewResolver(users, sources)
	generator := newsletter.NewGenerator(users, resolver, composer, client, newsletters)
	analyzer := newsletter.NewAnalyzer(users, newsletters, client)

	router.NewNewslettersRouter(e, newsletters, generator, analyzer, issuer).Bind()

	user := domain.User{Name: "병민", Email: "a@b.c"}
	if withKey {
		user.OpenAIKey = "sk-test"
	}
	userID, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	user.ID = userID

	token, err := issuer.Issue(&user)
	require.NoError(t, err)

	return &apiFixture{e: e, client: client, token: token}
}

func TestGenerateEndpoint_Success(t *testing.T) {
	f := newAPIFixture(t, true)

	rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate",
		`{"topics":["AI","반도체"],"usePersonalization":false}`, f.token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success    bool `json:"success"`
		Newsletter struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"newsletter"`
		PersonalizationUsed bool `json:"personalizationUsed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "통합 테스트 뉴스레터", resp.Newsletter.Title)
	assert.False(t, resp.PersonalizationUsed)
	assert.NotEmpty(t, resp.Newsletter.ID)
}

func TestGenerateEndpoint_ErrorStatuses(t *testing.T) {
	t.Run("empty topics", func(t *testing.T) {
		f := newAPIFixture(t, true)
		rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":[]}`, f.token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no api key configured", func(t *testing.T) {
		f := newAPIFixture(t, false)
		rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":["AI"]}`, f.token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("provider quota", func(t *testing.T) {
		f := newAPIFixture(t, true)
		f.client.err = apperr.NewQuota("insufficient quota")
		rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":["AI"]}`, f.token)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("provider invalid key", func(t *testing.T) {
		f := newAPIFixture(t, true)
		f.client.err = apperr.NewProvider("invalid api key", apperr.ProviderCodeInvalidAPIKey)
		rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":["AI"]}`, f.token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid api key")
	})

	t.Run("no token", func(t *testing.T) {
		f := newAPIFixture(t, true)
		rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":["AI"]}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// The id from a generate response must be directly usable for analysis.
func TestGenerateThenAnalyzeOverHTTP(t *testing.T) {
	f := newAPIFixture(t, true)

	rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":["AI"]}`, f.token)
	require.Equal(t, http.StatusOK, rec.Code)

	var genResp struct {
		Newsletter struct {
			ID string `json:"id"`
		} `json:"newsletter"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genResp))

	f.client.text = `{
	  "keywords": ["AI", "반도체", "클라우드", "투자", "규제"],
	  "sentiment": "중립적",
	  "summary": "요약",
	  "relatedTopics": ["머신러닝"],
	  "timeliness": "보통",
	  "commentary": "코멘트"
	}`

	rec = doJSON(f.e, http.MethodPost, "/api/newsletters/analyze",
		`{"newsletterId":"`+genResp.Newsletter.ID+`"}`, f.token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var anaResp struct {
		Success  bool                  `json:"success"`
		Analysis domain.AnalysisResult `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anaResp))
	assert.True(t, anaResp.Success)
	assert.Len(t, anaResp.Analysis.Keywords, 5)
	assert.Equal(t, domain.SentimentNeutral, anaResp.Analysis.Sentiment)
}

func TestAnalyzeEndpoint_UnknownNewsletter(t *testing.T) {
	f := newAPIFixture(t, true)

	rec := doJSON(f.e, http.MethodPost, "/api/newsletters/analyze",
		`{"newsletterId":"3f0d8f6e-0000-0000-0000-000000000000"}`, f.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAndGetAndDelete(t *testing.T) {
	f := newAPIFixture(t, true)

	rec := doJSON(f.e, http.MethodPost, "/api/newsletters/generate", `{"topics":["AI"]}`, f.token)
	require.Equal(t, http.StatusOK, rec.Code)

	var genResp struct {
		Newsletter struct {
			ID string `json:"id"`
		} `json:"newsletter"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genResp))

	rec = doJSON(f.e, http.MethodGet, "/api/newsletters", "", f.token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), genResp.Newsletter.ID)

	rec = doJSON(f.e, http.MethodGet, "/api/newsletters/"+genResp.Newsletter.ID, "", f.token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(f.e, http.MethodDelete, "/api/newsletters/"+genResp.Newsletter.ID, "", f.token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(f.e, http.MethodGet, "/api/newsletters/"+genResp.Newsletter.ID, "", f.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
