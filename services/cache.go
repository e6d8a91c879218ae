package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ─── List cache ───────────────────────────────────────────────────────────────
//
// List responses are cached in Redis keyed by (resource, scope, page, limit[,
// filter]), where scope is the destination id for destination-scoped resources
// and the user id for trips. Invalidation always targets a (resource, scope)
// prefix, so deleting a hotel under destination d1 never touches d2's entries
// or any other resource's.

const listCacheTTL = 5 * time.Minute

type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var listCache *ListCache

func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR not set — list caching disabled")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable (%v) — list caching disabled", err)
		return
	}

	listCache = &ListCache{rdb: rdb, ttl: listCacheTTL}
	log.Println("✅ Redis list cache connected")
}

func Cache() *ListCache {
	return listCache
}

// ListKey builds the cache key for one page of one scoped list. The filter is
// part of the key so two filtered views never collide; it is empty for every
// resource except trips.
func ListKey(resource, scope string, page, limit int, filter string) string {
	key := fmt.Sprintf("list:%s:%s:p%d:l%d", resource, scope, page, limit)
	if filter != "" {
		key += ":q" + filter
	}
	return key
}

// ListPrefix is the invalidation prefix covering every page and filter of one
// scoped list.
func ListPrefix(resource, scope string) string {
	return fmt.Sprintf("list:%s:%s:", resource, scope)
}

// Get loads a cached list response into dest. A nil cache misses everything.
func (c *ListCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("Cache decode error for %s: %v", key, err)
		return false
	}
	return true
}

func (c *ListCache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("Cache store error for %s: %v", key, err)
	}
}

func (c *ListCache) invalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, prefix+"*").Result()
	if err != nil {
		log.Printf("Cache scan error for %s: %v", prefix, err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache delete error for %s: %v", prefix, err)
	}
}

// ─── Mutation invalidation table ─────────────────────────────────────────────
//
// Which cache prefixes a mutation invalidates is declared here as data, not
// left to call-site discipline. Creates and deletes invalidate the same
// scoped prefix, so a freshly created item is visible on the next list fetch.

type Mutation string

const (
	TripCreate       Mutation = "trip.create"
	TripDelete       Mutation = "trip.delete"
	ActivityCreate   Mutation = "activity.create"
	ActivityDelete   Mutation = "activity.delete"
	HotelCreate      Mutation = "hotel.create"
	HotelDelete      Mutation = "hotel.delete"
	RestaurantCreate Mutation = "restaurant.create"
	RestaurantDelete Mutation = "restaurant.delete"
	FlightCreate     Mutation = "flight.create"
	FlightDelete     Mutation = "flight.delete"
)

// mutationResources maps each mutation to the resource list it invalidates.
// The scope is supplied by the caller: the owning user id for trip mutations,
// the affected destination id for everything else.
var mutationResources = map[Mutation][]string{
	TripCreate:       {"trip"},
	TripDelete:       {"trip"},
	ActivityCreate:   {"activity"},
	ActivityDelete:   {"activity"},
	HotelCreate:      {"hotel"},
	HotelDelete:      {"hotel"},
	RestaurantCreate: {"restaurant"},
	RestaurantDelete: {"restaurant"},
	FlightCreate:     {"flight"},
	FlightDelete:     {"flight"},
}

// InvalidationPrefixes resolves the declared prefixes for a mutation against
// its scope id.
func InvalidationPrefixes(m Mutation, scope string) []string {
	resources, ok := mutationResources[m]
	if !ok {
		return nil
	}
	prefixes := make([]string, 0, len(resources))
	for _, r := range resources {
		prefixes = append(prefixes, ListPrefix(r, scope))
	}
	return prefixes
}

// InvalidateFor applies a mutation's declared invalidations.
func (c *ListCache) InvalidateFor(ctx context.Context, m Mutation, scope string) {
	for _, prefix := range InvalidationPrefixes(m, scope) {
		c.invalidatePrefix(ctx, prefix)
	}
}
