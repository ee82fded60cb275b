package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overlays WALLROTATE_* variables onto c. A nil environ reads the
// process environment.
func ApplyEnv(c *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(c, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("%w: parse env: %v", ErrInvalidOption, err)
	}
	return c.Validate()
}
