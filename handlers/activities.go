package handlers

import (
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/database"
	"roteiro/services"
)

// ─── Create Activity ──────────────────────────────────────────────────────────

type createActivityRequest struct {
	DestinationID  string   `json:"destinationId" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Date           string   `json:"date" binding:"required"`
	StartTime      string   `json:"startTime" binding:"required"`
	EndTime        string   `json:"endTime" binding:"required"`
	TimezoneOffset float64  `json:"timezoneOffset"`
	Cost           *float64 `json:"cost"`
	Street         string   `json:"street"`
	Number         string   `json:"number"`
	Neighborhood   string   `json:"neighborhood"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Country        string   `json:"country"`
	Zipcode        string   `json:"zipcode"`
}

func CreateActivityHandler(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	destID := req.DestinationID
	if !requireDestinationOwner(c, destID) {
		return
	}

	dest, err := database.GetDestination(destID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	start, err := services.LocalTimeToUTC(req.Date, req.StartTime, req.TimezoneOffset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time"})
		return
	}
	end, err := services.LocalTimeToUTC(req.Date, req.EndTime, req.TimezoneOffset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
		return
	}

	activity := &database.Activity{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Address: database.Address{
			Street:       req.Street,
			Number:       req.Number,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			Country:      req.Country,
			Zipcode:      req.Zipcode,
		},
	}

	// Address falls back to the destination when the form left it blank
	if activity.Address.City == "" {
		activity.Address.City = dest.City
	}
	if activity.Address.State == "" {
		activity.Address.State = dest.State
	}
	if activity.Address.Country == "" {
		activity.Address.Country = dest.Country
	}

	var cost *float64
	if req.Cost != nil && !math.IsNaN(*req.Cost) && !math.IsInf(*req.Cost, 0) {
		cost = req.Cost
	}

	if err := database.CreateActivity(destID, activity, cost); err != nil {
		log.Printf("❌ Failed to create activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.ActivityCreate, destID)
	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

// ─── List Activities ──────────────────────────────────────────────────────────

func ListActivitiesHandler(c *gin.Context) {
	destID := c.Param("destinationId")
	if !requireDestinationOwner(c, destID) {
		return
	}
	page, limit := parseListParams(c, 9)

	ctx := c.Request.Context()
	key := services.ListKey("activity", destID, page, limit, "")

	var cached gin.H
	if services.Cache().Get(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	activities, total, err := database.ListActivities(destID, page, limit)
	if err != nil {
		log.Printf("❌ Failed to list activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities"})
		return
	}

	resp := gin.H{
		"activity":   activities,
		"pagination": services.NewPagination(page, limit, total),
	}
	services.Cache().Set(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

// ─── Delete Activity ──────────────────────────────────────────────────────────

func DeleteActivityHandler(c *gin.Context) {
	id := c.Param("id")

	destID, err := database.ActivityDestination(id)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}
	if !requireDestinationOwner(c, destID) {
		return
	}

	if _, err := database.DeleteActivity(id); err != nil {
		log.Printf("❌ Failed to delete activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	services.Cache().InvalidateFor(c.Request.Context(), services.ActivityDelete, destID)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}
