package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour/styles"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/alertbox/internal/content"
	"github.com/hay-kot/alertbox/internal/dialog"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.Timing.Settle < 0 {
		errs = errs.Append("timing.settle", fmt.Errorf("must not be negative, got %s", c.Timing.Settle))
	}
	if c.Timing.Teardown < 0 {
		errs = errs.Append("timing.teardown", fmt.Errorf("must not be negative, got %s", c.Timing.Teardown))
	}

	if c.Render.Width < MinWidth {
		errs = errs.Append("render.width", fmt.Errorf("must be at least %d, got %d", MinWidth, c.Render.Width))
	}
	if !validGlamourStyle(c.Render.GlamourStyle) {
		errs = errs.Append("render.glamour_style", fmt.Errorf("unknown style %q", c.Render.GlamourStyle))
	}

	errs = c.validateDefaults(errs)

	for i, pattern := range c.Content {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("content[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}

	return errs.ToError()
}

func (c *Config) validateDefaults(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if _, ok := c.Defaults[dialog.KeyType]; ok {
		errs = errs.Append("defaults.type", fmt.Errorf("type cannot be defaulted, set it per dialog"))
	}

	if v, ok := c.Defaults[dialog.KeyFrom]; ok {
		s, isString := v.(string)
		if _, valid := dialog.ParseFrom(s); !isString || !valid {
			errs = errs.Append("defaults.from", fmt.Errorf("must be one of %v, got %v", dialog.Froms(), v))
		}
	}

	if v, ok := c.Defaults[dialog.KeyEffect]; ok {
		if _, isString := v.(string); !isString {
			errs = errs.Append("defaults.effect", fmt.Errorf("must be a string, got %T", v))
		}
	}

	if v, ok := c.Defaults[dialog.KeyWait]; ok {
		if ms, isNum := number(v); !isNum || ms < 0 {
			errs = errs.Append("defaults.wait", fmt.Errorf("must be a non-negative number of milliseconds, got %v", v))
		}
	}

	if v, ok := c.Defaults[dialog.KeyOverlay]; ok {
		if _, isBool := v.(bool); !isBool {
			errs = errs.Append("defaults.overlay", fmt.Errorf("must be true or false, got %v", v))
		}
	}

	for _, key := range []string{dialog.KeySuccess, dialog.KeyCancelled, dialog.KeyComplete} {
		if v, ok := c.Defaults[key]; ok && v != nil {
			errs = errs.Append("defaults."+key, fmt.Errorf("callbacks cannot be set from a config file"))
		}
	}

	return errs
}

// Warnings reports configuration that loads but probably does not do what
// the user intended.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	known := dialog.Defaults()
	keys := make([]string, 0, len(c.Defaults))
	for k := range c.Defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := known[k]; !ok {
			warnings = append(warnings, ValidationWarning{
				Category: "Defaults",
				Item:     k,
				Message:  "unknown option, it will be ignored",
			})
		}
	}

	for i, pattern := range c.Content {
		if !doublestar.ValidatePattern(pattern) {
			continue
		}
		matches, err := doublestar.FilepathGlob(content.ExpandHome(pattern), doublestar.WithFilesOnly())
		if err == nil && len(matches) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Content",
				Item:     fmt.Sprintf("content[%d]", i),
				Message:  fmt.Sprintf("pattern %q matches no files", pattern),
			})
		}
	}

	return warnings
}

// ValidateDeep performs Validate and also checks that the config file itself
// is readable.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if configPath != "" {
		info, err := os.Stat(configPath)
		switch {
		case err == nil && info.IsDir():
			errs = errs.Append("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("config_file", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if err := c.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			fieldErrs = criterio.FieldErrors{{Err: err}}
		}
		for _, fe := range fieldErrs {
			errs = errs.Append(fe.Field, fe.Err)
		}
	}

	return errs.ToError()
}

func validGlamourStyle(name string) bool {
	if name == styles.AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[name]
	return ok
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
