package directory

import "time"

// Config represents the configuration for the listing directory client
type Config struct {
	// BaseURL is the directory API base URL
	BaseURL string

	// APIKey authenticates this backend with the directory; optional in
	// development where the directory accepts anonymous submissions
	APIKey string

	// Timeout bounds each submission request
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}
