package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeonbyeongmin/canny-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates_OverridesMergeWithDefaults(t *testing.T) {
	data := []byte(`
basePrompt: "커스텀 베이스 프롬프트"
toneDescriptions:
  casual: "커스텀 캐주얼 설명"
`)

	templates, err := ParseTemplates(data)
	require.NoError(t, err)

	assert.Equal(t, "커스텀 베이스 프롬프트", templates.BasePrompt)
	assert.Equal(t, "커스텀 캐주얼 설명", templates.ToneDescriptions[domain.ToneCasual])

	defaults := DefaultTemplates()
	assert.Equal(t, defaults.SystemPrompt, templates.SystemPrompt)
	assert.Equal(t, defaults.LengthDescriptions, templates.LengthDescriptions)
	assert.Equal(t, defaults.FormatDescriptions, templates.FormatDescriptions)
}

func TestLoadTemplates_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`systemPrompt: "파일에서 읽은 시스템 프롬프트"`), 0o644))

	templates, err := LoadTemplates(path)
	require.NoError(t, err)
	assert.Equal(t, "파일에서 읽은 시스템 프롬프트", templates.SystemPrompt)
}

func TestLoadTemplates_MissingFile(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseTemplates_InvalidYAML(t *testing.T) {
	_, err := ParseTemplates([]byte("basePrompt: [broken"))
	assert.Error(t, err)
}
