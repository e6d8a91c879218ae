package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerDefaults(t *testing.T) {
	t.Parallel()

	tc := NewTripPageController()
	assert.Equal(t, TabActivities, tc.ActiveTab())
	for _, tab := range []Tab{TabActivities, TabHotels, TabRestaurants, TabFlights} {
		assert.Equal(t, 1, tc.Page(tab))
		assert.False(t, tc.ModalOpen(tab))
	}
}

func TestSelectTabResetsAllCounters(t *testing.T) {
	t.Parallel()

	tc := NewTripPageController()
	tc.SetPage(TabActivities, 3)
	tc.SetPage(TabHotels, 2)
	tc.SetPage(TabRestaurants, 4)
	tc.SetPage(TabFlights, 5)

	tc.SelectTab(TabHotels)

	assert.Equal(t, TabHotels, tc.ActiveTab())
	for _, tab := range []Tab{TabActivities, TabHotels, TabRestaurants, TabFlights} {
		assert.Equal(t, 1, tc.Page(tab), "tab %s must reset", tab)
	}
}

func TestSelectDestinationResets(t *testing.T) {
	t.Parallel()

	tc := NewTripPageController()
	tc.SelectDestination("d1")
	tc.SelectTab(TabFlights)
	tc.SetPage(TabFlights, 3)

	tc.SelectDestination("d2")

	assert.Equal(t, "d2", tc.DestinationID())
	assert.Equal(t, TabActivities, tc.ActiveTab())
	assert.Equal(t, 1, tc.Page(TabFlights))
}

func TestSetPageIsIndependent(t *testing.T) {
	t.Parallel()

	tc := NewTripPageController()
	tc.SetPage(TabHotels, 3)

	assert.Equal(t, 3, tc.Page(TabHotels))
	assert.Equal(t, 1, tc.Page(TabActivities))
	assert.Equal(t, 1, tc.Page(TabRestaurants))
	assert.Equal(t, 1, tc.Page(TabFlights))

	tc.SetPage(TabHotels, 0)
	assert.Equal(t, 1, tc.Page(TabHotels), "pages below one clamp")
}

func TestModals(t *testing.T) {
	t.Parallel()

	tc := NewTripPageController()
	tc.OpenModal(TabRestaurants)
	assert.True(t, tc.ModalOpen(TabRestaurants))
	assert.False(t, tc.ModalOpen(TabHotels))

	tc.CloseModal(TabRestaurants)
	assert.False(t, tc.ModalOpen(TabRestaurants))
}
