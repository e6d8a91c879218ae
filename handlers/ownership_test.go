package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/database"
)

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		db.Close()
	})
	return mock
}

// ownedRouter fakes an authenticated session for user u-42.
func ownedRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u-42")
	})
	r.GET("/hotel/list/:destinationId", ListHotelsHandler)
	r.DELETE("/hotel/delete/:id", DeleteHotelHandler)
	r.POST("/hotel/create", CreateHotelHandler)
	return r
}

func expectDestinationOwner(mock sqlmock.Sqlmock, owner string) {
	mock.ExpectQuery("SELECT t.user_id FROM destinations").
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(owner))
}

func TestListHotelsRejectsForeignDestination(t *testing.T) {
	mock := withMockDB(t)
	expectDestinationOwner(mock, "someone-else")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotel/list/d1", nil)
	ownedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHotelsUnknownDestinationIs404(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("SELECT t.user_id FROM destinations").
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotel/list/d1", nil)
	ownedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHotelRejectsForeignOwner(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("SELECT destination_id FROM hotels").
		WithArgs("h1").
		WillReturnRows(sqlmock.NewRows([]string{"destination_id"}).AddRow("d1"))
	expectDestinationOwner(mock, "someone-else")
	// No DELETE expectation: the row must survive

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/hotel/delete/h1", nil)
	ownedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHotelRejectsForeignDestination(t *testing.T) {
	mock := withMockDB(t)
	expectDestinationOwner(mock, "someone-else")

	w := httptest.NewRecorder()
	body := `{"destinationId":"d1","name":"Hotel Fasano"}`
	req := httptest.NewRequest(http.MethodPost, "/hotel/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ownedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
