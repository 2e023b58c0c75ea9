package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 200 * time.Millisecond
	DefaultMaxDelay   = 5 * time.Second
	DefaultJitterMin  = 0.5
	DefaultJitterMax  = 1.5
)

// RetryableFunc defines a function that can be retried and returns only an error.
type RetryableFunc func() error

// Config holds configuration for retry operations.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	JitterMin  float64
	JitterMax  float64
}

// NewConfig creates a new retry configuration with default values.
func NewConfig() *Config {
	return &Config{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
		JitterMin:  DefaultJitterMin,
		JitterMax:  DefaultJitterMax,
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func (c *Config) WithMaxRetries(maxRetries int) *Config {
	c.MaxRetries = maxRetries
	return c
}

// Backoff calculates exponential backoff with jitter to prevent thundering herd.
func (c *Config) Backoff(attempt int) time.Duration {
	exponentialDelay := min(time.Duration(1<<attempt)*c.BaseDelay, c.MaxDelay)

	jitterRange := c.JitterMax - c.JitterMin
	jitter := c.JitterMin + rand.Float64()*jitterRange
	return min(time.Duration(float64(exponentialDelay)*jitter), c.MaxDelay)
}

// DoWithConfig executes a function with retry logic using the provided configuration.
func DoWithConfig(ctx context.Context, config *Config, fn RetryableFunc) error {
	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		// Check context cancellation before each attempt.
		select {
		case <-ctx.Done():
			return fmt.Errorf("context error: %w", ctx.Err())
		default:
		}

		if err := fn(); err == nil {
			return nil
		} else if attempt == config.MaxRetries {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context error: %w", ctx.Err())
		case <-time.After(config.Backoff(attempt)):
			// Continue to next attempt.
		}
	}

	return nil
}
