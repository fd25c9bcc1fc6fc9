package letlang

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/shibukawa/letlang/markdownparser"
	"github.com/shibukawa/letlang/parser"
)

// Config represents the letlang configuration
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Parser   ParserConfig   `yaml:"parser"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// OutputConfig represents CLI output settings
type OutputConfig struct {
	// Format is one of text, json, yaml
	Format string `yaml:"format"`
	// Color is a pointer to distinguish between unset and false. If nil, color is enabled
	Color *bool `yaml:"color"`
}

// IsColorEnabled returns true unless color: false is set
func (o *OutputConfig) IsColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// ParserConfig represents parser settings
type ParserConfig struct {
	StrictTopLevel bool `yaml:"strict_top_level"`
}

// Options converts the settings into parser options
func (p ParserConfig) Options() parser.Options {
	return parser.Options{StrictTopLevel: p.StrictTopLevel}
}

// MarkdownConfig represents settings for Markdown inputs
type MarkdownConfig struct {
	// Languages are the fenced code block info strings read as letlang source
	Languages []string `yaml:"languages"`
}

// ValidFormats lists the accepted output formats
var ValidFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

// ParseConfig parses YAML configuration, applies defaults, expands
// environment variables and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	// strict mode detects unknown fields
	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if !ValidFormats[config.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, config.Output.Format)
	}

	for i, language := range config.Markdown.Languages {
		if language == "" {
			return fmt.Errorf("%w: markdown.languages[%d] must not be empty", ErrConfigValidation, i)
		}
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Markdown: MarkdownConfig{
			Languages: append([]string{}, markdownparser.DefaultLanguages...),
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}

	if len(config.Markdown.Languages) == 0 {
		config.Markdown.Languages = append([]string{}, markdownparser.DefaultLanguages...)
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Output.Format = expandEnvVars(config.Output.Format)

	for i, language := range config.Markdown.Languages {
		config.Markdown.Languages[i] = expandEnvVars(language)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
