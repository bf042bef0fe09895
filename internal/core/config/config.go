// Package config handles configuration loading and validation for pagekit.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Theme names the starting color mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether the theme is a supported mode.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Config holds the application configuration.
type Config struct {
	Theme       Theme      `yaml:"theme"`
	Timings     Timings    `yaml:"timings"`
	FlashColors []string   `yaml:"flash_colors"`
	FAQ         []FAQEntry `yaml:"faq"`
	Tabs        []TabEntry `yaml:"tabs"`
	DataDir     string     `yaml:"-"` // set by caller, not from config file
}

// Timings holds the delays of the one-shot page timers.
type Timings struct {
	FlashReset  time.Duration `yaml:"flash_reset"`  // background color revert after a key press
	NoticeHide  time.Duration `yaml:"notice_hide"`  // success notice hide after a valid submit
	DoubleClick time.Duration `yaml:"double_click"` // max gap between the two activations
}

// FAQEntry is one collapsible question.
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// TabEntry is one tab button and its pane.
type TabEntry struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeLight,
		Timings: Timings{
			FlashReset:  1000 * time.Millisecond,
			NoticeHide:  5000 * time.Millisecond,
			DoubleClick: 400 * time.Millisecond,
		},
		FlashColors: []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFBE0B", "#FB5607", "#8338EC"},
		FAQ: []FAQEntry{
			{
				Question: "What is an event?",
				Answer:   "An event is a signal that something happened, like a click, a key press, or a form submission.",
			},
			{
				Question: "How do listeners work?",
				Answer:   "A listener is bound once at startup and runs every time its event fires.",
			},
			{
				Question: "Why validate while typing?",
				Answer:   "Errors clear as soon as a field becomes valid, so you know the fix worked before resubmitting.",
			},
		},
		Tabs: []TabEntry{
			{ID: "tab1", Title: "Events", Body: "Click, hover, type, and double-click the boxes in the Events section."},
			{ID: "tab2", Title: "Components", Body: "The theme switch, counter, FAQ, and these tabs each keep their own state."},
			{ID: "tab3", Title: "Forms", Body: "The registration form checks every field on submit and clears errors as you fix them."},
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Timings.FlashReset == 0 {
		c.Timings.FlashReset = defaults.Timings.FlashReset
	}
	if c.Timings.NoticeHide == 0 {
		c.Timings.NoticeHide = defaults.Timings.NoticeHide
	}
	if c.Timings.DoubleClick == 0 {
		c.Timings.DoubleClick = defaults.Timings.DoubleClick
	}
	if len(c.FlashColors) == 0 {
		c.FlashColors = defaults.FlashColors
	}
	if len(c.Tabs) == 0 {
		c.Tabs = defaults.Tabs
	}
}
