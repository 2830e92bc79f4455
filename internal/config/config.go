package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// BaseURL is the Dragon Ball API base URL.
	BaseURL string `json:"base_url,omitempty"`

	// Language is the language requested from the API and the translation
	// target (BCP 47-ish two-letter code).
	Language string `json:"language,omitempty"`

	// SourceLanguage is the hint passed to the translator for untranslated
	// description text. The upstream dataset is Spanish.
	SourceLanguage string `json:"source_language,omitempty"`

	// PageSize is the number of items requested per list page.
	PageSize int `json:"page_size,omitempty"`

	// HTTPTimeoutSeconds bounds each upstream request.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds,omitempty"`

	// DisableTranslation skips the translation service entirely and renders
	// source-language text as-is.
	DisableTranslation bool `json:"disable_translation,omitempty"`

	// HoverPanel and WideLayout seed the TUI display preferences.
	HoverPanel bool `json:"hover_panel,omitempty"`
	WideLayout bool `json:"wide_layout,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections
	// for the translation cache. 0 means use sql.DB default.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:            "https://dragonball-api.com/api",
		Language:           "en",
		SourceLanguage:     "es",
		PageSize:           20,
		HTTPTimeoutSeconds: 10,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.senzu.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.BaseURL = overlay.BaseURL
	if result.BaseURL == "" {
		result.BaseURL = base.BaseURL
	}

	result.Language = overlay.Language
	if result.Language == "" {
		result.Language = base.Language
	}

	result.SourceLanguage = overlay.SourceLanguage
	if result.SourceLanguage == "" {
		result.SourceLanguage = base.SourceLanguage
	}

	result.PageSize = overlay.PageSize
	if result.PageSize == 0 {
		result.PageSize = base.PageSize
	}

	result.HTTPTimeoutSeconds = overlay.HTTPTimeoutSeconds
	if result.HTTPTimeoutSeconds == 0 {
		result.HTTPTimeoutSeconds = base.HTTPTimeoutSeconds
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	// Booleans: overlay wins if true, else base
	result.DisableTranslation = base.DisableTranslation || overlay.DisableTranslation
	result.HoverPanel = base.HoverPanel || overlay.HoverPanel
	result.WideLayout = base.WideLayout || overlay.WideLayout

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
