package observability

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
		"span": NewSpanObserver(LevelVerbose),
	}
	mutex sync.RWMutex
)

// GetObserver resolves the observer named by config.StoreConfig.Observer.
// Built in: "noop", "slog" (default logger) and "span" (active OTel span).
// Unknown names wrap ErrUnknownObserver and list the registered names.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf(
			"%w: %s (registered: %s)",
			ErrUnknownObserver,
			name,
			strings.Join(slices.Sorted(maps.Keys(observers)), ", "),
		)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer. Stores resolve names at
// construction, so replacing "slog" with a CLI-configured logger must happen
// before store.New.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}

// Names returns the registered observer names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	return slices.Sorted(maps.Keys(observers))
}
