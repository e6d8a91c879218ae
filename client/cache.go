package client

import "sync"

// queryKey identifies one cached page of one resource list.
type queryKey struct {
	resource string
	scope    string
	page     int
	limit    int
	filter   string
}

// QueryCache stores list responses per resource, scope, and page. It stays
// disabled until a session is established so anonymous fetches are never
// reused across accounts.
type QueryCache struct {
	mu      sync.RWMutex
	enabled bool
	entries map[queryKey]any
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[queryKey]any)}
}

func (qc *QueryCache) Enable() {
	qc.mu.Lock()
	qc.enabled = true
	qc.mu.Unlock()
}

// Disable turns caching off and drops everything cached so far.
func (qc *QueryCache) Disable() {
	qc.mu.Lock()
	qc.enabled = false
	qc.entries = make(map[queryKey]any)
	qc.mu.Unlock()
}

func (qc *QueryCache) Enabled() bool {
	qc.mu.RLock()
	defer qc.mu.RUnlock()
	return qc.enabled
}

func (qc *QueryCache) get(key queryKey) (any, bool) {
	qc.mu.RLock()
	defer qc.mu.RUnlock()
	if !qc.enabled {
		return nil, false
	}
	v, ok := qc.entries[key]
	return v, ok
}

func (qc *QueryCache) put(key queryKey, v any) {
	qc.mu.Lock()
	if qc.enabled {
		qc.entries[key] = v
	}
	qc.mu.Unlock()
}

// invalidate drops every cached page of one resource within one scope.
// Other scopes (other destinations, other users) keep their entries.
func (qc *QueryCache) invalidate(resource, scope string) {
	qc.mu.Lock()
	for key := range qc.entries {
		if key.resource == resource && key.scope == scope {
			delete(qc.entries, key)
		}
	}
	qc.mu.Unlock()
}

// ─── Mutation table ───────────────────────────────────────────────────────────

// Mutation names a cache-relevant write, mirroring the server side.
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

// mutationResources declares which list resources each mutation stales.
// Adding a mutation means adding a row here, not new invalidation code.
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

// InvalidateFor applies the mutation table for the given scope.
func (qc *QueryCache) InvalidateFor(m Mutation, scope string) {
	for _, resource := range mutationResources[m] {
		qc.invalidate(resource, scope)
	}
}
