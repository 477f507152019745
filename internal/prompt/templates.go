package prompt

import (
	"fmt"
	"os"

	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"gopkg.in/yaml.v3"
)

// Templates holds the fixed instruction text the composer renders from.
// The descriptions are keyed by the closed preference enums; values outside
// the tables render without a description sentence.
type Templates struct {
	BasePrompt   string `yaml:"basePrompt"`
	SystemPrompt string `yaml:"systemPrompt"`

	ToneDescriptions   map[domain.Tone]string   `yaml:"toneDescriptions"`
	LengthDescriptions map[domain.Length]string `yaml:"lengthDescriptions"`
	FormatDescriptions map[domain.Format]string `yaml:"formatDescriptions"`
}

func DefaultTemplates() Templates {
	return Templates{
		BasePrompt:   "당신은 개인화된 뉴스레터를 작성하는 전문 작가입니다. 아래 정보를 바탕으로 구독자에게 맞춘 뉴스레터를 작성해주세요.",
		SystemPrompt: "당신은 전문 뉴스레터 작성자입니다. 요청된 주제에 대해 잘 구성된 마크다운 형식의 뉴스레터를 작성합니다.",
		ToneDescriptions: map[domain.Tone]string{
			domain.ToneCasual:  "친근하고 편안한 말투로 작성합니다",
			domain.ToneNeutral: "중립적이고 담백한 말투로 작성합니다",
			domain.ToneFormal:  "격식 있고 전문적인 말투로 작성합니다",
		},
		LengthDescriptions: map[domain.Length]string{
			domain.LengthShort:  "핵심만 간결하게 정리합니다",
			domain.LengthMedium: "적당한 분량으로 배경 설명을 포함합니다",
			domain.LengthLong:   "배경과 전망까지 깊이 있게 다룹니다",
		},
		FormatDescriptions: map[domain.Format]string{
			domain.FormatClassic: "전통적인 뉴스레터 구성을 따릅니다",
			domain.FormatModern:  "소제목과 불릿을 활용한 현대적인 구성을 따릅니다",
			domain.FormatDigest:  "여러 소식을 요약 중심으로 묶어 전달합니다",
		},
	}
}

// LoadTemplates reads a YAML template file and fills any omitted field from
// the defaults, so an override file only needs the parts it changes.
func LoadTemplates(path string) (Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Templates{}, fmt.Errorf("read templates file: %w", err)
	}
	return ParseTemplates(data)
}

func ParseTemplates(data []byte) (Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Templates{}, fmt.Errorf("parse templates YAML: %w", err)
	}

	defaults := DefaultTemplates()
	if t.BasePrompt == "" {
		t.BasePrompt = defaults.BasePrompt
	}
	if t.SystemPrompt == "" {
		t.SystemPrompt = defaults.SystemPrompt
	}
	if len(t.ToneDescriptions) == 0 {
		t.ToneDescriptions = defaults.ToneDescriptions
	}
	if len(t.LengthDescriptions) == 0 {
		t.LengthDescriptions = defaults.LengthDescriptions
	}
	if len(t.FormatDescriptions) == 0 {
		t.FormatDescriptions = defaults.FormatDescriptions
	}

	return t, nil
}
