// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds CLI configuration read from the environment.
type Settings struct {
	LogLevel  string `env:"GROUPMIX_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GROUPMIX_LOG_FORMAT" envDefault:"text"`
	Outputs   int    `env:"GROUPMIX_OUTPUTS" envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns Settings with environment overrides applied to the defaults.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
