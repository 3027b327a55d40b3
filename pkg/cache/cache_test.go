package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchKey_Normalizes(t *testing.T) {
	a := SearchKey(map[string]string{
		"location": "  Vijayawada ",
		"purpose":  "sale",
		"page":     "1",
		"limit":    "9",
		"bedrooms": "",
	})
	b := SearchKey(map[string]string{
		"limit":    "9",
		"page":     "1",
		"purpose":  "sale",
		"location": "vijayawada",
	})
	assert.Equal(t, a, b)
	assert.Equal(t, "listings:search:limit=9&location=vijayawada&page=1&purpose=sale", a)
}

func TestSearchKey_DistinguishesPages(t *testing.T) {
	p1 := SearchKey(map[string]string{"page": "1", "limit": "9"})
	p2 := SearchKey(map[string]string{"page": "2", "limit": "9"})
	assert.NotEqual(t, p1, p2)
}

func TestSearchKey_EscapesValues(t *testing.T) {
	key := SearchKey(map[string]string{"search": "Sea View&Pool"})
	assert.Equal(t, "listings:search:search=sea+view%26pool", key)
}

func TestSearchKey_KeepsInnerSpacing(t *testing.T) {
	a := SearchKey(map[string]string{"search": "sea  view"})
	b := SearchKey(map[string]string{"search": "sea view"})
	assert.NotEqual(t, a, b, "the database matches inner spacing literally")
}

func TestPropertyKey(t *testing.T) {
	assert.Equal(t, "property:64f1", PropertyKey("64f1"))
}

func TestCacheError(t *testing.T) {
	err := NewCacheError("get", redis.Nil, false)
	assert.True(t, IsMiss(err))
	assert.True(t, IsMiss(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, "cache operation get failed: redis: nil", err.Error())

	other := NewCacheError("set", errors.New("connection reset"), true)
	assert.False(t, IsMiss(other))
	assert.True(t, other.Retryable)
}

func TestRedisCache_NotInitialized(t *testing.T) {
	c := &RedisCache{}
	ctx := context.Background()

	err := c.Set(ctx, "k", 1, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInitialized)

	var v int
	assert.ErrorIs(t, c.Get(ctx, "k", &v), ErrNotInitialized)
	assert.ErrorIs(t, c.Delete(ctx, "k"), ErrNotInitialized)
	_, err = c.Exists(ctx, "k")
	assert.ErrorIs(t, err, ErrNotInitialized)
}
