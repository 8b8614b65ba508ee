package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Cache is a TTL response cache. Implementations are safe for
// concurrent use. Get reports a miss for expired or absent keys.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

// Key builds a stable cache key from request parts. Parts are
// case-folded and trimmed so "Times Square" and "times square  "
// share an entry.
func Key(prefix string, parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(p)))
	}

	sum := sha1.Sum([]byte(strings.Join(normalized, "|")))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
