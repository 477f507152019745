package newsletter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/jeonbyeongmin/canny-sub000/internal/completion"
	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysisJSON = `{
  "keywords": ["AI", "반도체", "클라우드", "투자", "규제"],
  "sentiment": "긍정적",
  "summary": "AI 산업의 성장 동향을 다룬 뉴스레터입니다.",
  "relatedTopics": ["머신러닝", "데이터센터"],
  "timeliness": "높음",
  "commentary": "시의성 있는 주제를 잘 다루고 있습니다."
}`

func (f *fixture) addNewsletter(t *testing.T, ownerID uuid.UUID) uuid.UUID {
	t.Helper()
	id, err := f.newsletters.Save(context.Background(), domain.Newsletter{
		UserID:  ownerID,
		Title:   "AI 뉴스레터",
		Content: "# AI 뉴스레터\n본문",
		Topics:  "AI",
	})
	require.NoError(t, err)
	return id
}

func TestAnalyze_Success(t *testing.T) {
	client := &fakeClient{text: validAnalysisJSON}
	f := newFixture(client)
	userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c", OpenAIKey: "sk-test"})
	newsletterID := f.addNewsletter(t, userID)

	result, err := f.analyzer.Analyze(context.Background(), userID, newsletterID)
	require.NoError(t, err)

	assert.Len(t, result.Keywords, 5)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
	assert.Equal(t, domain.TimelinessHigh, result.Timeliness)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Commentary)
}

func TestAnalyze_RequestShape(t *testing.T) {
	client := &fakeClient{text: validAnalysisJSON}
	f := newFixture(client)
	userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c", OpenAIKey: "sk-test"})
	newsletterID := f.addNewsletter(t, userID)

	_, err := f.analyzer.Analyze(context.Background(), userID, newsletterID)
	require.NoError(t, err)

	assert.Equal(t, 0.5, client.lastReq.Temperature)
	require.NotNil(t, client.lastReq.ResponseFormat)
	assert.Equal(t, "json_object", client.lastReq.ResponseFormat.Type)

	userTurn := client.lastReq.Messages[1].Content
	assert.Contains(t, userTurn, "AI 뉴스레터")
	assert.Contains(t, userTurn, `"keywords"`)
	assert.Contains(t, userTurn, `"timeliness"`)
}

func TestAnalyze_FencedJSONAccepted(t *testing.T) {
	client := &fakeClient{text: "```json\n" + validAnalysisJSON + "\n```"}
	f := newFixture(client)
	userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c", OpenAIKey: "sk-test"})
	newsletterID := f.addNewsletter(t, userID)

	result, err := f.analyzer.Analyze(context.Background(), userID, newsletterID)
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
}

func TestAnalyze_ForbiddenForOtherOwner(t *testing.T) {
	client := &fakeClient{text: validAnalysisJSON}
	f := newFixture(client)
	ownerID := f.addUser(t, domain.User{Name: "주인", Email: "owner@b.c", OpenAIKey: "sk-owner"})
	otherID := f.addUser(t, domain.User{Name: "타인", Email: "other@b.c", OpenAIKey: "sk-other"})
	newsletterID := f.addNewsletter(t, ownerID)

	_, err := f.analyzer.Analyze(context.Background(), otherID, newsletterID)
	require.Error(t, err)

	var fe *apperr.ForbiddenError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, 0, client.calls, "no completion call on ownership mismatch")
}

func TestAnalyze_MissingNewsletter(t *testing.T) {
	client := &fakeClient{text: validAnalysisJSON}
	f := newFixture(client)
	userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c", OpenAIKey: "sk-test"})

	_, err := f.analyzer.Analyze(context.Background(), userID, uuid.New())
	require.Error(t, err)

	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
	assert.Equal(t, 0, client.calls)
}

func TestAnalyze_MissingAPIKey(t *testing.T) {
	client := &fakeClient{text: validAnalysisJSON}
	f := newFixture(client)
	userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c"})
	newsletterID := f.addNewsletter(t, userID)

	_, err := f.analyzer.Analyze(context.Background(), userID, newsletterID)
	require.Error(t, err)

	var ue *apperr.UnauthorizedError
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, 0, client.calls)
}

func TestAnalyze_MalformedResponses(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not json", "이건 JSON이 아닙니다"},
		{"empty", ""},
		{"missing keywords", `{"sentiment":"긍정적","summary":"요약","timeliness":"높음"}`},
		{"missing sentiment", `{"keywords":["a"],"summary":"요약","timeliness":"높음"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{text: tc.text}
			f := newFixture(client)
			userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c", OpenAIKey: "sk-test"})
			newsletterID := f.addNewsletter(t, userID)

			_, err := f.analyzer.Analyze(context.Background(), userID, newsletterID)
			require.Error(t, err)

			var mre *apperr.MalformedResponseError
			assert.True(t, errors.As(err, &mre))
		})
	}
}

// A freshly generated newsletter's id must be directly usable as analysis
// input with no additional setup.
func TestGenerateThenAnalyzeRoundTrip(t *testing.T) {
	client := &fakeClient{text: "# 라운드트립\n본문"}
	f := newFixture(client)
	userID := f.addUser(t, domain.User{Name: "병민", Email: "a@b.c", OpenAIKey: "sk-test"})

	generated, err := f.generator.Generate(context.Background(), userID, domain.GenerationRequest{Topics: []string{"AI"}})
	require.NoError(t, err)

	client.text = validAnalysisJSON
	result, err := f.analyzer.Analyze(context.Background(), userID, generated.Newsletter.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
	assert.Equal(t, 2, client.calls)
}

var _ completion.Client = (*fakeClient)(nil)
