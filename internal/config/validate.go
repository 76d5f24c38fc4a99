package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	return nil
}

func (p PipelineConfig) validate() error {
	if p.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be >= 1 (got %d)", p.DefaultPageSize)
	}
	if p.MaxPageSize < p.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", p.MaxPageSize, p.DefaultPageSize)
	}
	if p.ConflictAttempts < 1 {
		return fmt.Errorf("conflict_attempts must be >= 1 (got %d)", p.ConflictAttempts)
	}
	return nil
}
