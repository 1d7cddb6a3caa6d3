package movement

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const datasetKeyPrefix = "movement:dataset:"

// Store keeps decoded datasets for roughly the lifetime of a user session.
// Each dataset is one JSON value written with a single SET, so replacement is
// atomic: a reader sees either the old dataset or the new one, never a new
// record set mixed with old indices. Without a Redis client the store
// degrades to an in-process map, which also serves unit tests.
type Store struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.Mutex
	local map[string][]byte
}

// NewStore instantiates a dataset store.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl, local: make(map[string][]byte)}
}

func datasetKey(id string) string {
	return datasetKeyPrefix + id
}

// Save writes the dataset wholesale under its id.
func (s *Store) Save(ctx context.Context, ds *Dataset) error {
	raw, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("movement: marshal dataset: %w", err)
	}
	if s.client == nil {
		s.mu.Lock()
		s.local[ds.ID] = raw
		s.mu.Unlock()
		return nil
	}
	if err := s.client.Set(ctx, datasetKey(ds.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("movement: save dataset: %w", err)
	}
	return nil
}

// Load reads a dataset by id, returning ErrDatasetNotFound for unknown or
// expired ids.
func (s *Store) Load(ctx context.Context, id string) (*Dataset, error) {
	var raw []byte
	if s.client == nil {
		s.mu.Lock()
		stored, ok := s.local[id]
		s.mu.Unlock()
		if !ok {
			return nil, ErrDatasetNotFound
		}
		raw = stored
	} else {
		stored, err := s.client.Get(ctx, datasetKey(id)).Bytes()
		if err == redis.Nil {
			return nil, ErrDatasetNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("movement: load dataset: %w", err)
		}
		raw = stored
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("movement: unmarshal dataset: %w", err)
	}
	return &ds, nil
}

// Delete removes a dataset by id. Missing ids are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		s.mu.Lock()
		delete(s.local, id)
		s.mu.Unlock()
		return nil
	}
	return s.client.Del(ctx, datasetKey(id)).Err()
}
