// Package config provides configuration for stores and async action creators.
//
// Configuration only exists during initialization. It is layered: defaults,
// then a JSON file, then environment variables.
//
//	cfg, err := config.LoadConfig("actions.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := config.ParseEnv(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Merge Semantics
//
// Merge copies a field from source only when it is set:
//
//   - Strings: Merge if source is non-empty
//   - Integers: Merge if source is greater than zero
//   - Nested configs: Recursive merge
//
// # Environment
//
//	ACTIONS_STORE_NAME      store name used in logs and events
//	ACTIONS_STORE_OBSERVER  observer registry name ("noop", "slog", "span")
//	ACTIONS_STORE_HISTORY   number of dispatched action types to retain
//	ACTIONS_DELIMITER       lifecycle type delimiter for async creators
package config
