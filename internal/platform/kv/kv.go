// Package kv is the durable edge of the app: a string-keyed store that the
// module adapters serialize their records into. Two implementations exist,
// one on sqlite and one on a plain JSON file, selected by configuration.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports a Get for a key that has never been Set (or was
// deleted). Adapters translate it into their zero value.
var ErrKeyNotFound = errors.New("key not found")

// Gateway is a minimal get/set/delete contract. Set overwrites whole values;
// there are no partial updates.
type Gateway interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
