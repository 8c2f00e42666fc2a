package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileGateway stores all records as one JSON object on disk. It exists for
// installs where a plain-text data file matters more than sqlite durability.
type FileGateway struct {
	path string
	mu   sync.Mutex
}

func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

func (g *FileGateway) Get(_ context.Context, key string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	records, err := g.readLocked()
	if err != nil {
		return "", err
	}
	value, ok := records[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (g *FileGateway) Set(_ context.Context, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	records, err := g.readLocked()
	if err != nil {
		return err
	}
	records[key] = value
	return g.writeLocked(records)
}

func (g *FileGateway) Delete(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	records, err := g.readLocked()
	if err != nil {
		return err
	}
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)
	return g.writeLocked(records)
}

func (g *FileGateway) readLocked() (map[string]string, error) {
	data, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}
	var records map[string]string
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	if records == nil {
		records = map[string]string{}
	}
	return records, nil
}

func (g *FileGateway) writeLocked(records map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records file: %w", err)
	}
	if err := os.WriteFile(g.path, data, 0o644); err != nil {
		return fmt.Errorf("write records file: %w", err)
	}
	return nil
}
