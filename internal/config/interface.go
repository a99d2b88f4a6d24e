package config

import "context"

// Loader is the interface for a format-specific front end. Load reads the
// build description from the given paths, translates it into the
// format-agnostic model, and validates cross-target consistency.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
