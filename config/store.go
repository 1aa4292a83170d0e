package config

// StoreConfig defines configuration for a store instance.
type StoreConfig struct {
	// Name identifies the store in logs and observer events.
	Name string `json:"name" env:"NAME"`

	// Observer names a registered observer ("noop", "slog", "span", ...).
	Observer string `json:"observer" env:"OBSERVER"`

	// History bounds the retained list of dispatched action types (0 = off).
	History int `json:"history" env:"HISTORY"`
}

// DefaultStoreConfig returns a StoreConfig with observation and history
// disabled.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Name:     "default",
		Observer: "noop",
		History:  0,
	}
}

func (c *StoreConfig) Merge(source *StoreConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.History > 0 {
		c.History = source.History
	}
}
