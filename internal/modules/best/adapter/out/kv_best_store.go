package out

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shivam2408/Self-Mediation-App/internal/platform/kv"
)

// bestKey is where the record lives in the gateway, as a decimal string.
const bestKey = "personalBest"

// KVBestStore persists the personal best through the key/value gateway.
type KVBestStore struct {
	gateway kv.Gateway
}

func NewKVBestStore(gateway kv.Gateway) *KVBestStore {
	return &KVBestStore{gateway: gateway}
}

func (s *KVBestStore) Load(ctx context.Context) (int64, error) {
	raw, err := s.gateway.Get(ctx, bestKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse personal best %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative personal best %d", value)
	}
	return value, nil
}

func (s *KVBestStore) Save(ctx context.Context, durationMs int64) error {
	return s.gateway.Set(ctx, bestKey, strconv.FormatInt(durationMs, 10))
}
