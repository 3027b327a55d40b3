package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/pkg/cache"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	data   map[string][]byte
	ttl    map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (m *memoryStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.ttl[key] = expiration
	return nil
}

func (m *memoryStore) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return cache.NewCacheError("get", redis.Nil, false)
	}
	return json.Unmarshal(b, dest)
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func TestSearchCache_RoundTrip(t *testing.T) {
	store := newMemoryStore()
	c := NewSearchCache(store)
	ctx := context.Background()

	got, err := c.GetSearch(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got, "a miss is not an error")

	resp := &models.SearchResponse{
		Properties: []models.Property{{PropertyName: "Lake View", Purpose: models.PurposeSale, Price: 4500000}},
		Pagination: models.Pagination{Current: 1, Pages: 1, Total: 1},
	}
	require.NoError(t, c.SetSearch(ctx, "k", resp, time.Minute))
	assert.Equal(t, time.Minute, store.ttl["k"])

	got, err = c.GetSearch(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "Lake View", got.Properties[0].PropertyName)
	assert.Equal(t, resp.Pagination, got.Pagination)
}

func TestSearchCache_EmptyPageDecodesToEmptySlice(t *testing.T) {
	store := newMemoryStore()
	store.data["k"] = []byte(`{"pagination":{"current":1,"pages":1,"total":0}}`)

	got, err := NewSearchCache(store).GetSearch(context.Background(), "k")
	require.NoError(t, err)
	assert.NotNil(t, got.Properties)
	assert.Empty(t, got.Properties)
}

func TestSearchCache_Failure(t *testing.T) {
	store := newMemoryStore()
	store.getErr = cache.NewCacheError("get", errors.New("connection refused"), true)

	_, err := NewSearchCache(store).GetSearch(context.Background(), "k")
	assert.Error(t, err)
}
