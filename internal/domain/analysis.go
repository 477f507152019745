package domain

const (
	SentimentPositive = "긍정적"
	SentimentNegative = "부정적"
	SentimentNeutral  = "중립적"

	TimelinessHigh   = "높음"
	TimelinessMedium = "보통"
	TimelinessLow    = "낮음"
)

// AnalysisResult is the structured output of analyzing a generated
// newsletter. Ephemeral; returned to the caller, never persisted.
type AnalysisResult struct {
	Keywords      []string `json:"keywords"`
	Sentiment     string   `json:"sentiment"`
	Summary       string   `json:"summary"`
	RelatedTopics []string `json:"relatedTopics"`
	Timeliness    string   `json:"timeliness"`
	Commentary    string   `json:"commentary"`
}
