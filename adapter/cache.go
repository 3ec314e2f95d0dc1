package adapter

import "context"

// Cache stores solver output keyed by problem tag and input digest.
type Cache interface {
	Type() string
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
