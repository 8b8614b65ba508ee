package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_NormalizesParts(t *testing.T) {
	// Case and surrounding whitespace never split cache entries
	a := Key("routes", "Times Square", "Central Park")
	b := Key("routes", "times square  ", "  CENTRAL PARK")
	assert.Equal(t, a, b)

	// Different inputs get different keys
	c := Key("routes", "Times Square", "Brooklyn Bridge")
	assert.NotEqual(t, a, c)

	// The prefix partitions the keyspace
	d := Key("transit", "Times Square", "Central Park")
	assert.NotEqual(t, a, d)
}

func TestMemoryCache_SetGet(t *testing.T) {
	mem := NewMemoryCache(10, time.Minute)
	ctx := context.Background()

	_, ok := mem.Get(ctx, "missing")
	assert.False(t, ok)

	mem.Set(ctx, "k1", "v1")
	value, ok := mem.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "v1", value)
}

func TestMemoryCache_Expiry(t *testing.T) {
	mem := NewMemoryCache(10, 20*time.Millisecond)
	ctx := context.Background()

	mem.Set(ctx, "k1", "v1")
	time.Sleep(50 * time.Millisecond)

	_, ok := mem.Get(ctx, "k1")
	assert.False(t, ok)
}

func TestMemoryCache_EvictsAtCapacity(t *testing.T) {
	mem := NewMemoryCache(2, time.Minute)
	ctx := context.Background()

	mem.Set(ctx, "k1", "v1")
	mem.Set(ctx, "k2", "v2")
	mem.Set(ctx, "k3", "v3")

	// LRU keeps the newest entries
	_, ok := mem.Get(ctx, "k3")
	assert.True(t, ok)
	_, ok = mem.Get(ctx, "k1")
	assert.False(t, ok)
}
