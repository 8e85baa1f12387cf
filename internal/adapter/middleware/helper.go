package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"biztime/pkg/id"

	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

// buildKey scopes a client key to the concrete request target, so the same key
// sent to /invoices/1 and /invoices/2 never collides.
func buildKey(method, path, idemKey string) string {
	return "idemp:biztime:" + strings.ToLower(method) + ":" + path + ":" + idemKey
}

var reUUID = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)

func validKey(k string) bool {
	return reUUID.MatchString(k) || id.IsID32(k)
}

// ---- Redis helpers ----
func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

// claim takes the provisional lock for key. When the lock is held by someone
// else it returns their entry instead. A key that vanishes between SETNX and
// GET (expired or released) is claimed again.
func claim(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, idempEntry, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := provisionalSet(ctx, rdb, key, entry)
		if err != nil || ok {
			return ok, idempEntry{}, err
		}
		cur, err := loadEntry(ctx, rdb, key)
		if errors.Is(err, redis.Nil) {
			continue
		}
		return false, cur, err
	}
	// still churning; treat as busy
	return false, idempEntry{InProgress: true}, nil
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(v, &e)
	return e, err
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}

func release(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}
