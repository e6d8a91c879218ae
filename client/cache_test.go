package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCacheDisabledByDefault(t *testing.T) {
	t.Parallel()

	qc := NewQueryCache()
	key := queryKey{resource: "hotel", scope: "d1", page: 1, limit: 4}

	qc.put(key, "value")
	_, ok := qc.get(key)
	assert.False(t, ok, "disabled cache must not store or serve entries")
}

func TestQueryCacheEnableDisable(t *testing.T) {
	t.Parallel()

	qc := NewQueryCache()
	qc.Enable()

	key := queryKey{resource: "hotel", scope: "d1", page: 1, limit: 4}
	qc.put(key, "value")

	v, ok := qc.get(key)
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	// Disabling flushes, so re-enabling starts empty
	qc.Disable()
	qc.Enable()
	_, ok = qc.get(key)
	assert.False(t, ok)
}

func TestQueryCacheInvalidateScope(t *testing.T) {
	t.Parallel()

	qc := NewQueryCache()
	qc.Enable()

	d1p1 := queryKey{resource: "hotel", scope: "d1", page: 1, limit: 4}
	d1p2 := queryKey{resource: "hotel", scope: "d1", page: 2, limit: 4}
	d2p1 := queryKey{resource: "hotel", scope: "d2", page: 1, limit: 4}
	rest := queryKey{resource: "restaurant", scope: "d1", page: 1, limit: 4}

	for _, k := range []queryKey{d1p1, d1p2, d2p1, rest} {
		qc.put(k, "x")
	}

	qc.InvalidateFor(HotelDelete, "d1")

	_, ok := qc.get(d1p1)
	assert.False(t, ok, "all pages of hotel:d1 must drop")
	_, ok = qc.get(d1p2)
	assert.False(t, ok)

	_, ok = qc.get(d2p1)
	assert.True(t, ok, "other destinations keep their entries")
	_, ok = qc.get(rest)
	assert.True(t, ok, "other resources keep their entries")
}

func TestMutationTableCoversAllMutations(t *testing.T) {
	t.Parallel()

	mutations := []Mutation{
		TripCreate, TripDelete,
		ActivityCreate, ActivityDelete,
		HotelCreate, HotelDelete,
		RestaurantCreate, RestaurantDelete,
		FlightCreate, FlightDelete,
	}
	for _, m := range mutations {
		assert.NotEmpty(t, mutationResources[m], "mutation %s has no invalidation row", m)
	}
}
