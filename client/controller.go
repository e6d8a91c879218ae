package client

// Tab identifies one of the sub-resource panels on the trip details view.
type Tab string

const (
	TabActivities  Tab = "activities"
	TabHotels      Tab = "hotels"
	TabRestaurants Tab = "restaurants"
	TabFlights     Tab = "flights"
)

// TripPageController tracks the view state of the trip details page: the
// selected destination, the active tab, one page counter per sub-resource,
// and the open/closed state of each creation modal.
type TripPageController struct {
	destinationID string
	tab           Tab

	activityPage   int
	hotelPage      int
	restaurantPage int
	flightPage     int

	modals map[Tab]bool
}

func NewTripPageController() *TripPageController {
	c := &TripPageController{
		tab:    TabActivities,
		modals: make(map[Tab]bool),
	}
	c.resetPages()
	return c
}

func (tc *TripPageController) resetPages() {
	tc.activityPage = 1
	tc.hotelPage = 1
	tc.restaurantPage = 1
	tc.flightPage = 1
}

// SelectDestination switches destinations, returning to the first tab with
// every counter back at page one.
func (tc *TripPageController) SelectDestination(id string) {
	tc.destinationID = id
	tc.tab = TabActivities
	tc.resetPages()
}

func (tc *TripPageController) DestinationID() string { return tc.destinationID }

// SelectTab activates a tab and resets all four page counters, so stale page
// positions never survive a tab change.
func (tc *TripPageController) SelectTab(tab Tab) {
	tc.tab = tab
	tc.resetPages()
}

func (tc *TripPageController) ActiveTab() Tab { return tc.tab }

// Page returns the current page counter for a tab.
func (tc *TripPageController) Page(tab Tab) int {
	switch tab {
	case TabActivities:
		return tc.activityPage
	case TabHotels:
		return tc.hotelPage
	case TabRestaurants:
		return tc.restaurantPage
	case TabFlights:
		return tc.flightPage
	}
	return 1
}

// SetPage moves one tab's counter without touching the others.
func (tc *TripPageController) SetPage(tab Tab, page int) {
	if page < 1 {
		page = 1
	}
	switch tab {
	case TabActivities:
		tc.activityPage = page
	case TabHotels:
		tc.hotelPage = page
	case TabRestaurants:
		tc.restaurantPage = page
	case TabFlights:
		tc.flightPage = page
	}
}

// ─── Modals ───────────────────────────────────────────────────────────────────

func (tc *TripPageController) OpenModal(tab Tab)  { tc.modals[tab] = true }
func (tc *TripPageController) CloseModal(tab Tab) { tc.modals[tab] = false }

func (tc *TripPageController) ModalOpen(tab Tab) bool { return tc.modals[tab] }
