package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"teamsync/internal/queue"
)

// newTestRecorder returns a recorder backed by a throwaway queue. Tests that
// care about recorded activity inspect the queue directly.
func newTestRecorder() (*queue.Recorder, *queue.MemoryQueue) {
	q := queue.NewMemoryQueue(64)
	return queue.NewRecorder(q), q
}

// fakeCache is an in-memory Cache that round-trips values through JSON the
// same way the Redis implementation does.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	b, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}
