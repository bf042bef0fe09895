package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/pagekit/internal/core/validate"
)

// Validate checks that the configuration is valid. Failures are reported as
// criterio.FieldErrors keyed by the yaml path of the offending value.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateBasics(),
		c.validateFlashColors(),
		c.validateFAQ(),
		c.validateTabs(),
	)
}

func (c *Config) validateBasics() error {
	var errs criterio.FieldErrorsBuilder
	if c.DataDir == "" {
		errs = errs.Append("data_dir", errors.New("data directory cannot be empty"))
	}
	if !c.Theme.IsValid() {
		errs = errs.Append("theme", fmt.Errorf("invalid theme %q (want %q or %q)", c.Theme, ThemeLight, ThemeDark))
	}
	timings := []struct {
		field string
		d     time.Duration
	}{
		{"timings.flash_reset", c.Timings.FlashReset},
		{"timings.notice_hide", c.Timings.NoticeHide},
		{"timings.double_click", c.Timings.DoubleClick},
	}
	for _, tm := range timings {
		if tm.d <= 0 {
			errs = errs.Append(tm.field, errors.New("must be positive"))
		}
	}
	return errs.ToError()
}

func (c *Config) validateFlashColors() error {
	errs := make([]error, 0, len(c.FlashColors))
	for i, color := range c.FlashColors {
		errs = append(errs, validate.HexColorField(fmt.Sprintf("flash_colors[%d]", i), color))
	}
	return criterio.ValidateStruct(errs...)
}

func (c *Config) validateFAQ() error {
	errs := make([]error, 0, len(c.FAQ))
	for i, entry := range c.FAQ {
		errs = append(errs, validate.RequiredField(fmt.Sprintf("faq[%d].question", i), entry.Question))
	}
	return criterio.ValidateStruct(errs...)
}

func (c *Config) validateTabs() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool, len(c.Tabs))
	for i, tab := range c.Tabs {
		field := fmt.Sprintf("tabs[%d]", i)
		if tab.ID == "" {
			errs = errs.Append(field+".id", errors.New("id is required"))
			continue
		}
		if seen[tab.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate tab id %q", tab.ID))
		}
		seen[tab.ID] = true
		if tab.Title == "" {
			errs = errs.Append(field+".title", errors.New("title is required"))
		}
	}
	return errs.ToError()
}
