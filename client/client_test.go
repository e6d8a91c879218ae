package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer counts hits per path so tests can observe cache behavior.
type testServer struct {
	*httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

func (ts *testServer) hitCount(path string) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.hits[path]
}

func signedTestToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": userID})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{hits: make(map[string]int)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"accessToken": signedTestToken(t, "u-1")})
	})
	mux.HandleFunc("GET /hotel/list/{destinationId}", func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.hits[r.URL.Path]++
		ts.mu.Unlock()
		json.NewEncoder(w).Encode(HotelList{
			Hotels:     []Hotel{{ID: "h1", Name: "Hotel " + r.PathValue("destinationId")}},
			Pagination: Pagination{Page: 1, Limit: 4, Total: 1, TotalPages: 1},
		})
	})
	mux.HandleFunc("POST /hotel/create", func(w http.ResponseWriter, r *http.Request) {
		var req NewHotel
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DestinationID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]Hotel{"hotel": {ID: "h2", Name: req.Name}})
	})
	mux.HandleFunc("GET /trip/list/{userId}", func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.hits[r.URL.Path]++
		ts.mu.Unlock()
		json.NewEncoder(w).Encode(TripList{
			Trips:      []Trip{{ID: "t1", Title: "Férias"}},
			Pagination: Pagination{Page: 1, Limit: 9, Total: 1, TotalPages: 1},
		})
	})

	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestListCachingRequiresSession(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	c := New(ts.URL)

	// Signed out: every fetch goes upstream
	_, err := c.ListHotels("d1", 1)
	require.NoError(t, err)
	_, err = c.ListHotels("d1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, ts.hitCount("/hotel/list/d1"))
}

func TestListCachingAfterSignin(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	c := New(ts.URL)
	require.NoError(t, c.Signin("ana@example.com", "supersecret"))
	assert.Equal(t, "u-1", c.UserID())

	first, err := c.ListHotels("d1", 1)
	require.NoError(t, err)
	second, err := c.ListHotels("d1", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, ts.hitCount("/hotel/list/d1"), "second fetch must come from cache")
	assert.Equal(t, first, second)
}

func TestCreateHotelInvalidatesOnlyItsDestination(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	c := New(ts.URL)
	require.NoError(t, c.Signin("ana@example.com", "supersecret"))

	_, err := c.ListHotels("d1", 1)
	require.NoError(t, err)
	_, err = c.ListHotels("d2", 1)
	require.NoError(t, err)

	_, err = c.CreateHotel("d1", NewHotel{Name: "New"})
	require.NoError(t, err)

	// d1 is stale and refetches, d2 still serves from cache
	_, err = c.ListHotels("d1", 1)
	require.NoError(t, err)
	_, err = c.ListHotels("d2", 1)
	require.NoError(t, err)

	assert.Equal(t, 2, ts.hitCount("/hotel/list/d1"))
	assert.Equal(t, 1, ts.hitCount("/hotel/list/d2"))
}

func TestSignoutFlushesCache(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	c := New(ts.URL)
	require.NoError(t, c.Signin("ana@example.com", "supersecret"))

	_, err := c.ListTrips(1, "")
	require.NoError(t, err)

	c.Signout()
	assert.Empty(t, c.UserID())

	// Signed out again: list calls need a user id
	_, err = c.ListTrips(1, "")
	assert.Error(t, err)
}

func TestAPIErrorSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	err := c.Signin("ana@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}
