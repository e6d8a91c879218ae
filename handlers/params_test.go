package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listParamsContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x"+query, nil)
	return c
}

func TestParseListParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 9},
		{"explicit", "?page=3&limit=4", 3, 4},
		{"zero page clamps", "?page=0", 1, 9},
		{"negative page clamps", "?page=-2", 1, 9},
		{"zero limit falls back", "?limit=0", 1, 9},
		{"garbage falls back", "?page=abc&limit=xyz", 1, 9},
		{"oversized limit is capped", "?limit=10000", 1, maxListLimit},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, limit := parseListParams(listParamsContext(t, tt.query), 9)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
