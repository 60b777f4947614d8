// Package config loads the shell's optional YAML configuration.
package config

import (
	"github.com/go-playground/validator/v10"
)

// ConfigurationName is the default file name under the user's home
// directory.
const ConfigurationName = ".gosh.yaml"

// Configuration holds the user-tunable shell settings. All fields are
// optional; zero values fall back to built-in defaults.
type Configuration struct {
	// Prompt is the literal prompt string, "$ " when empty.
	Prompt string `json:"prompt"`

	// HistoryFile is used when the HISTFILE environment variable is
	// unset.
	HistoryFile string `json:"history_file"`

	// HistoryLimit caps the in-memory history, 0 means unlimited.
	HistoryLimit int `json:"history_limit" validate:"gte=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	return validator.New().Struct(c)
}
