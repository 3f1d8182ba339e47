package fsm

import "fmt"

// Config is a serialisable representation of the service configuration. It
// can be populated from JSON or YAML. The zero-value is useful – all nested
// fields inherit their package defaults.

type Config struct {
	// BaseURL is prepended to relative machine locations.
	BaseURL string      `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	Events  EventConfig `json:"events" yaml:"events"`
}

// EventConfig tunes the run-event queue.
type EventConfig struct {
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
	MaxRetries  int `json:"maxRetries" yaml:"maxRetries"`
}

// DefaultConfig returns a Config populated with the same defaults the
// constructors use. Callers may modify the returned struct before passing it
// to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Events: EventConfig{
			QueueBuffer: 100,
			MaxRetries:  3,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Events.QueueBuffer <= 0 {
		return fmt.Errorf("events.queueBuffer must be > 0")
	}
	if c.Events.MaxRetries < 0 {
		return fmt.Errorf("events.maxRetries must be >= 0")
	}
	return nil
}
