// Package config loads and saves user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rcliao/inkwell/internal/model"
)

// Settings are the user preferences shown on the settings screen.
type Settings struct {
	FontName         string  `toml:"font_name" json:"font_name"`
	FontSize         float64 `toml:"font_size" json:"font_size"`
	AccentColor      string  `toml:"accent_color" json:"accent_color"`
	AutoSave         bool    `toml:"auto_save" json:"auto_save"`
	AutoSaveInterval float64 `toml:"auto_save_interval" json:"auto_save_interval"`
	DefaultCategory  string  `toml:"default_category" json:"default_category"`
}

// Bounds of the numeric settings.
const (
	MinFontSize         = 12
	MaxFontSize         = 24
	MinAutoSaveInterval = 1
	MaxAutoSaveInterval = 30
)

// AvailableFonts lists the selectable body fonts.
var AvailableFonts = []string{"SF Pro", "New York", "Helvetica Neue", "Times New Roman", "Courier"}

// AccentColors lists the selectable accent colors.
var AccentColors = []string{"blue", "green", "orange", "red", "purple", "pink"}

var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid value")
)

// SettingError reports a problem with one setting.
type SettingError struct {
	Key string
	Err error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %q: %v", e.Key, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		FontName:         "SF Pro",
		FontSize:         16,
		AccentColor:      "blue",
		AutoSave:         true,
		AutoSaveInterval: 5,
		DefaultCategory:  model.DefaultCategory,
	}
}

// DefaultPath returns $INKWELL_CONFIG or ~/.inkwell/config.toml.
func DefaultPath() string {
	if env := os.Getenv("INKWELL_CONFIG"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inkwell", "config.toml")
}

// Load reads settings from path. A missing file yields Defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Defaults()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, &SettingError{Key: undecoded[0].String(), Err: ErrUnknownKey}
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes settings to path, creating its directory.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}

// Validate checks every setting against its allowed values.
func (s Settings) Validate() error {
	if !contains(AvailableFonts, s.FontName) {
		return &SettingError{Key: "font_name", Err: fmt.Errorf("%w: %q", ErrInvalidValue, s.FontName)}
	}
	if s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		return &SettingError{Key: "font_size", Err: fmt.Errorf("%w: %v not in [%d, %d]", ErrOutOfRange, s.FontSize, MinFontSize, MaxFontSize)}
	}
	if !contains(AccentColors, s.AccentColor) {
		return &SettingError{Key: "accent_color", Err: fmt.Errorf("%w: %q", ErrInvalidValue, s.AccentColor)}
	}
	if s.AutoSaveInterval < MinAutoSaveInterval || s.AutoSaveInterval > MaxAutoSaveInterval {
		return &SettingError{Key: "auto_save_interval", Err: fmt.Errorf("%w: %v not in [%d, %d]", ErrOutOfRange, s.AutoSaveInterval, MinAutoSaveInterval, MaxAutoSaveInterval)}
	}
	if strings.TrimSpace(s.DefaultCategory) == "" {
		return &SettingError{Key: "default_category", Err: fmt.Errorf("%w: empty", ErrInvalidValue)}
	}
	return nil
}

// Set assigns a single setting from its string form, as given on the command
// line. The result is validated.
func (s *Settings) Set(key, value string) error {
	next := *s
	switch key {
	case "font_name":
		next.FontName = value
	case "font_size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &SettingError{Key: key, Err: fmt.Errorf("%w: %q", ErrInvalidValue, value)}
		}
		next.FontSize = v
	case "accent_color":
		next.AccentColor = strings.ToLower(value)
	case "auto_save":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return &SettingError{Key: key, Err: fmt.Errorf("%w: %q", ErrInvalidValue, value)}
		}
		next.AutoSave = v
	case "auto_save_interval":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &SettingError{Key: key, Err: fmt.Errorf("%w: %q", ErrInvalidValue, value)}
		}
		next.AutoSaveInterval = v
	case "default_category":
		next.DefaultCategory = strings.TrimSpace(value)
	default:
		return &SettingError{Key: key, Err: fmt.Errorf("%w (valid: %s)", ErrUnknownKey, strings.Join(Keys(), ", "))}
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// Keys returns the setting names accepted by Set.
func Keys() []string {
	keys := []string{"font_name", "font_size", "accent_color", "auto_save", "auto_save_interval", "default_category"}
	sort.Strings(keys)
	return keys
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
