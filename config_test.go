package letlang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseConfig(t *testing.T) {
	t.Setenv("LETLANG_FORMAT", "json")

	config, err := ParseConfig([]byte(`
output:
  format: ${LETLANG_FORMAT}
  color: false
parser:
  strict_top_level: true
markdown:
  languages: [ll]
`))
	assert.NoError(t, err)
	assert.Equal(t, "json", config.Output.Format)
	assert.False(t, config.Output.IsColorEnabled())
	assert.True(t, config.Parser.StrictTopLevel)
	assert.True(t, config.Parser.Options().StrictTopLevel)
	assert.Equal(t, []string{"ll"}, config.Markdown.Languages)
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig([]byte("parser:\n  strict_top_level: false\n"))
	assert.NoError(t, err)
	assert.Equal(t, "text", config.Output.Format)
	assert.True(t, config.Output.IsColorEnabled())
	assert.Equal(t, []string{"letlang", "let"}, config.Markdown.Languages)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "output:\n  colour: true\n"},
		{"invalid format", "output:\n  format: xml\n"},
		{"empty language", "markdown:\n  languages: [letlang, \"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := ParseConfig([]byte("output:\n  format: xml\n"))
	assert.IsError(t, err, ErrConfigValidation)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	config, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)

	path := filepath.Join(dir, "letlang.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0o600))

	config, err = LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "yaml", config.Output.Format)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LL_A", "one")
	t.Setenv("LL_B", "two")

	assert.Equal(t, "one-two", expandEnvVars("${LL_A}-$LL_B"))
	assert.Equal(t, "plain", expandEnvVars("plain"))
}
