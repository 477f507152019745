package prompt

import (
	"fmt"
	"strings"

	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
)

// Composer renders generation instructions. Both branches are pure string
// builders: identical inputs always produce byte-identical prompts.
type Composer struct {
	templates Templates
}

func NewComposer(templates Templates) *Composer {
	return &Composer{templates: templates}
}

func (c *Composer) SystemPrompt() string {
	return c.templates.SystemPrompt
}

// Personalized renders the full instruction block from the user's resolved
// settings, active sources, topics and optional free-text instructions.
func (c *Composer) Personalized(
	user *domain.User,
	prefs domain.Preferences,
	sources []domain.ContentSource,
	topics []string,
	instructions string,
) string {
	var b strings.Builder

	b.WriteString(c.templates.BasePrompt)
	b.WriteString("\n\n[사용자 정보]\n")
	fmt.Fprintf(&b, "- 이름: %s\n", user.Name)
	if prefs.Company != "" {
		fmt.Fprintf(&b, "- 회사: %s\n", prefs.Company)
	}
	if prefs.Timezone != "" {
		fmt.Fprintf(&b, "- 시간대: %s\n", prefs.Timezone)
	}
	language := prefs.Language
	if language == "" {
		language = domain.DefaultLanguage
	}
	fmt.Fprintf(&b, "- 언어: %s\n", language)

	b.WriteString("\n[뉴스레터 설정]\n")
	writeLabeled(&b, "톤", string(prefs.Tone), c.templates.ToneDescriptions[prefs.Tone])
	writeLabeled(&b, "길이", string(prefs.Length), c.templates.LengthDescriptions[prefs.Length])
	writeLabeled(&b, "포맷", string(prefs.Format), c.templates.FormatDescriptions[prefs.Format])
	fmt.Fprintf(&b, "- 최대 기사 수: %d개\n", prefs.MaxArticles)
	if prefs.IncludeSummary {
		b.WriteString("- AI 요약: 포함\n")
	} else {
		b.WriteString("- AI 요약: 미포함\n")
	}

	if len(sources) > 0 {
		b.WriteString("\n[구독 중인 소스]\n")
		for _, src := range sources {
			if src.Description != "" {
				fmt.Fprintf(&b, "- %s (%s): %s\n", src.Name, src.Category, src.Description)
			} else {
				fmt.Fprintf(&b, "- %s (%s)\n", src.Name, src.Category)
			}
		}
	}

	b.WriteString("\n[주제]\n")
	b.WriteString(strings.Join(topics, ", "))
	b.WriteString("\n")

	if instructions != "" {
		b.WriteString("\n[추가 지시사항]\n")
		b.WriteString(instructions)
		b.WriteString("\n")
	}

	return b.String()
}

// Plain is the non-personalized branch: topics, optional instructions and a
// fixed output skeleton.
func (c *Composer) Plain(topics []string, instructions string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "다음 주제에 대한 뉴스레터를 작성해주세요: %s\n", strings.Join(topics, ", "))

	if instructions != "" {
		fmt.Fprintf(&b, "\n추가 지시사항: %s\n", instructions)
	}

	b.WriteString("\n다음 형식을 따라주세요:\n")
	b.WriteString("# (뉴스레터 제목)\n")
	b.WriteString("## 주요 내용\n")
	b.WriteString("## 상세 내용\n")
	b.WriteString("## 마무리\n")

	return b.String()
}

// writeLabeled emits "- label: value - description", omitting the
// description sentence when the value is not in the lookup table.
func writeLabeled(b *strings.Builder, label, value, description string) {
	if description != "" {
		fmt.Fprintf(b, "- %s: %s - %s\n", label, value, description)
	} else {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}
