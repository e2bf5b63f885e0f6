package config

import "context"

// Loader is the interface for reading settings from configuration paths.
type Loader interface {
	// Load reads every configuration file under the given paths and returns
	// the merged result.
	Load(ctx context.Context, paths ...string) (*File, error)
}
