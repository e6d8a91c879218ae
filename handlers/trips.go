package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roteiro/database"
	"roteiro/services"
)

// maxListLimit caps ?limit so one request cannot page a whole table.
const maxListLimit = 50

// parseListParams reads ?page and ?limit with a per-resource default limit.
func parseListParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return page, limit
}

// ─── List Trips ───────────────────────────────────────────────────────────────

func ListTripsHandler(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	page, limit := parseListParams(c, 9)
	title := c.Query("title")

	ctx := c.Request.Context()
	key := services.ListKey("trip", userID, page, limit, title)

	var cached gin.H
	if services.Cache().Get(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	trips, total, err := database.ListTrips(userID, title, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list trips: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		return
	}

	resp := gin.H{
		"trips":      trips,
		"pagination": services.NewPagination(page, limit, total),
	}
	services.Cache().Set(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

// ─── Create Trip ──────────────────────────────────────────────────────────────

type createTripRequest struct {
	Title     string `json:"title" binding:"required"`
	UserTrips struct {
		UserID string `json:"userId" binding:"required"`
	} `json:"userTrips" binding:"required"`
	Destination []struct {
		City      string   `json:"city" binding:"required"`
		State     string   `json:"state"`
		Country   string   `json:"country"`
		StartDate string   `json:"startDate" binding:"required"`
		EndDate   string   `json:"endDate" binding:"required"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		PlaceID   string   `json:"placeId"`
	} `json:"destination" binding:"required,min=1"`
}

func CreateTripHandler(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.UserTrips.UserID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	dests := make([]database.Destination, 0, len(req.Destination))
	for _, d := range req.Destination {
		dest := database.Destination{
			City:      d.City,
			State:     d.State,
			Country:   d.Country,
			StartDate: d.StartDate,
			EndDate:   d.EndDate,
			PlaceID:   d.PlaceID,
		}
		if d.Latitude != nil {
			dest.Latitude = strconv.FormatFloat(*d.Latitude, 'f', -1, 64)
		}
		if d.Longitude != nil {
			dest.Longitude = strconv.FormatFloat(*d.Longitude, 'f', -1, 64)
		}
		dests = append(dests, dest)
	}

	trip, err := database.CreateTrip(req.UserTrips.UserID, req.Title, dests)
	if err != nil {
		log.Printf("❌ Failed to create trip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.TripCreate, req.UserTrips.UserID)
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// ─── Get / Delete Trip ────────────────────────────────────────────────────────

func GetTripHandler(c *gin.Context) {
	trip, err := database.GetTrip(c.Param("id"))
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		log.Printf("❌ Failed to load trip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

func DeleteTripHandler(c *gin.Context) {
	id := c.Param("id")

	owner, err := database.TripOwner(id)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}
	if owner != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if _, err := database.DeleteTrip(id); err != nil {
		log.Printf("❌ Failed to delete trip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.TripDelete, owner)
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

// ─── Trip Summary PDF ─────────────────────────────────────────────────────────

func TripSummaryHandler(c *gin.Context) {
	id := c.Param("id")

	owner, err := database.TripOwner(id)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip"})
		return
	}
	if owner != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	trip, err := database.GetTrip(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip"})
		return
	}

	// All activities per destination, unpaginated for the summary
	activities := make(map[string][]database.Activity, len(trip.Destinations))
	for _, dest := range trip.Destinations {
		acts, _, err := database.ListActivities(dest.ID, 1, 1000)
		if err != nil {
			log.Printf("❌ Failed to load activities for summary: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
			return
		}
		activities[dest.ID] = acts
	}

	pdfBytes, err := services.GenerateTripSummaryPDF(trip, activities)
	if err != nil {
		log.Printf("❌ Failed to generate PDF: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	filename := fmt.Sprintf("trip-%s.pdf", id)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
