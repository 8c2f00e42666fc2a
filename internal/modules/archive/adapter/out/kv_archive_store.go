package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/domain"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/kv"
)

// archiveKey holds the whole archive as one JSON array, newest first.
const archiveKey = "sessions"

// KVArchiveStore persists the archive through the key/value gateway.
type KVArchiveStore struct {
	gateway kv.Gateway
}

func NewKVArchiveStore(gateway kv.Gateway) *KVArchiveStore {
	return &KVArchiveStore{gateway: gateway}
}

func (s *KVArchiveStore) Load(ctx context.Context) ([]domain.Session, error) {
	raw, err := s.gateway.Get(ctx, archiveKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sessions []domain.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return nil, fmt.Errorf("decode session archive: %w", err)
	}
	return sessions, nil
}

func (s *KVArchiveStore) Save(ctx context.Context, sessions []domain.Session) error {
	if sessions == nil {
		sessions = []domain.Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode session archive: %w", err)
	}
	return s.gateway.Set(ctx, archiveKey, string(data))
}
