package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mdhaziqomar/memories/middleware"
	"github.com/mdhaziqomar/memories/services"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
)

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	EventDate   string `json:"event_date" binding:"required"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	EventDate   *string `json:"event_date"`
}

func ListEvents(c *gin.Context) {
	rows, err := getServices().Event.List(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"events": rows})
}

func GetEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid event id")
		return
	}

	row, err := getServices().Event.Get(c.Request.Context(), uint(eventID))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"event": row})
}

func CreateEvent(c *gin.Context) {
	adminID := c.GetUint(middleware.ContextUserID)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "event_date must be YYYY-MM-DD")
		return
	}

	event, err := getServices().Event.Create(c.Request.Context(), adminID, services.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		EventDate:   eventDate,
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Created(c, gin.H{
		"id":      event.ID,
		"message": "event created successfully",
	})
}

func UpdateEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid event id")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	in := services.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "event_date must be YYYY-MM-DD")
			return
		}
		in.EventDate = &eventDate
	}

	if err := getServices().Event.Update(c.Request.Context(), uint(eventID), in); respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"message": "event updated successfully"})
}

func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := getServices().Event.Deactivate(c.Request.Context(), uint(eventID)); respondServiceError(c, err) {
		return
	}

	utils.Success(c, gin.H{"message": "event deleted successfully"})
}
