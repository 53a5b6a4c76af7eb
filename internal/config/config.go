// Package config loads the glasschat settings file, applies environment
// overrides and watches the file for edits while the client runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all glasschat configuration.
type Config struct {
	// Theme is light, dark, or auto (follow the terminal background).
	Theme string `yaml:"theme" validate:"oneof=light dark auto"`

	// SeedPath replaces the built-in conversations when set.
	SeedPath string `yaml:"seed_path,omitempty"`

	Session SessionConfig `yaml:"session"`
	Profile ProfileConfig `yaml:"profile"`
	Logging LoggingConfig `yaml:"logging"`
}

// SessionConfig tunes the simulated assistant.
type SessionConfig struct {
	ReplyDelay        string `yaml:"reply_delay" validate:"duration"`
	VoiceCaptureDelay string `yaml:"voice_capture_delay" validate:"duration"`
	VoiceStopDelay    string `yaml:"voice_stop_delay" validate:"duration"`

	// ReplyPolicy is overlap or serialize.
	ReplyPolicy string `yaml:"reply_policy" validate:"oneof=overlap serialize"`

	// CannedReplies replaces the built-in reply set when non-empty.
	CannedReplies []string `yaml:"canned_replies,omitempty" validate:"dive,required"`

	// ReplySeed fixes the reply picker. Zero seeds from the clock.
	ReplySeed int64 `yaml:"reply_seed,omitempty"`
}

// ProfileConfig holds the profile screen's starting values.
type ProfileConfig struct {
	AIMode        string `yaml:"ai_mode" validate:"oneof=creative balanced precise"`
	Notifications bool   `yaml:"notifications"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// File receives the interactive client's log. Empty means the OS temp
	// directory.
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme: "auto",
		Session: SessionConfig{
			ReplyDelay:        "1.5s",
			VoiceCaptureDelay: "3s",
			VoiceStopDelay:    "500ms",
			ReplyPolicy:       "serialize",
		},
		Profile: ProfileConfig{
			AIMode:        "balanced",
			Notifications: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath is ~/.config/glasschat/config.yaml, or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "glasschat", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last, then the result is
// validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("GLASSCHAT_THEME"); theme != "" {
		c.Theme = theme
	}
	if delay := os.Getenv("GLASSCHAT_REPLY_DELAY"); delay != "" {
		c.Session.ReplyDelay = delay
	}
	if seed := os.Getenv("GLASSCHAT_SEED"); seed != "" {
		c.SeedPath = seed
	}
	if level := os.Getenv("GLASSCHAT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})
	return v
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetReplyDelay returns the reply delay as a duration.
func (c *Config) GetReplyDelay() time.Duration {
	return parseDuration(c.Session.ReplyDelay, 1500*time.Millisecond)
}

// GetVoiceCaptureDelay returns the voice auto-stop delay as a duration.
func (c *Config) GetVoiceCaptureDelay() time.Duration {
	return parseDuration(c.Session.VoiceCaptureDelay, 3*time.Second)
}

// GetVoiceStopDelay returns the transcript delay after a manual stop.
func (c *Config) GetVoiceStopDelay() time.Duration {
	return parseDuration(c.Session.VoiceStopDelay, 500*time.Millisecond)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
