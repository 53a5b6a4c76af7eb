// Package seed loads the static data the client starts with: the
// conversation list and the profile card.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"glasschat/internal/conversation"
	"glasschat/internal/profile"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var builtin []byte

// Data is the seed document.
type Data struct {
	Profile       profile.User                `yaml:"profile"`
	Conversations []conversation.Conversation `yaml:"conversations" validate:"unique=ID,dive"`
}

// Default returns the embedded seed.
func Default() (*Data, error) {
	return Parse(builtin)
}

// Load reads a seed file, or the embedded seed when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a seed document.
func Parse(data []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

var validate = validator.New()

// Validate checks that conversation ids are present and unique, that
// message ids are present and unique within their conversation, and that
// every message has a known sender.
func (d *Data) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	return nil
}

// Marshal renders the seed back to YAML.
func (d *Data) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal seed: %w", err)
	}
	return out, nil
}
