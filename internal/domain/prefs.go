package domain

type Tone string

const (
	ToneCasual  Tone = "casual"
	ToneNeutral Tone = "neutral"
	ToneFormal  Tone = "formal"
)

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

type Format string

const (
	FormatClassic Format = "classic"
	FormatModern  Format = "modern"
	FormatDigest  Format = "digest"
)

const (
	DefaultTone        = ToneNeutral
	DefaultLength      = LengthMedium
	DefaultFormat      = FormatClassic
	DefaultMaxArticles = 10
	DefaultLanguage    = "ko"

	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

func (t Tone) Valid() bool {
	switch t {
	case ToneCasual, ToneNeutral, ToneFormal:
		return true
	}
	return false
}

func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

func (f Format) Valid() bool {
	switch f {
	case FormatClassic, FormatModern, FormatDigest:
		return true
	}
	return false
}

// Preferences holds a user's newsletter generation settings. Zero values
// mean "not configured"; the settings resolver substitutes defaults.
type Preferences struct {
	Tone           Tone    `json:"tone,omitempty"`
	Length         Length  `json:"length,omitempty"`
	Format         Format  `json:"format,omitempty"`
	MaxArticles    int     `json:"maxArticles,omitempty"`
	IncludeSummary bool    `json:"includeSummary"`
	Company        string  `json:"company,omitempty"`
	Timezone       string  `json:"timezone,omitempty"`
	Language       string  `json:"language,omitempty"`
	CustomPrompt   string  `json:"customPrompt,omitempty"`
	Model          string  `json:"model,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	MaxTokens      int     `json:"maxTokens,omitempty"`
}

// WithDefaults returns a copy with every unset preference replaced by its
// documented default. IncludeSummary is already boolean and is kept as stored.
func (p Preferences) WithDefaults() Preferences {
	if p.Tone == "" {
		p.Tone = DefaultTone
	}
	if p.Length == "" {
		p.Length = DefaultLength
	}
	if p.Format == "" {
		p.Format = DefaultFormat
	}
	if p.MaxArticles <= 0 {
		p.MaxArticles = DefaultMaxArticles
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.Model == "" {
		p.Model = DefaultModel
	}
	if p.Temperature == 0 {
		p.Temperature = DefaultTemperature
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	return p
}
