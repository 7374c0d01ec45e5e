package handlers

import (
	"net/http"

	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List partitions with ?view=current|upcoming|past; the three views
// never overlap. ?location= and ?active=true filter instead.
func (h *EventHandler) List(c *gin.Context) {
	var (
		events []models.Event
		err    error
	)
	switch {
	case c.Query("view") == "current":
		events, err = h.events.FindCurrent()
	case c.Query("view") == "upcoming":
		events, err = h.events.FindUpcoming()
	case c.Query("view") == "past":
		events, err = h.events.FindPast()
	case c.Query("location") != "":
		events, err = h.events.FindByLocation(c.Query("location"))
	case c.Query("active") == "true":
		events, err = h.events.FindActive()
	default:
		events, err = h.events.FindAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	event, err := h.events.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	event.ID = 0
	event.IsActive = true
	if err := h.events.Save(&event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.events.FindByID(id); err != nil {
		respondError(c, err)
		return
	}
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	event.ID = id
	if err := h.events.Save(&event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// SetStatus activates or deactivates; events are never deleted so past
// sales keep their context.
func (h *EventHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	var (
		event *models.Event
		err   error
	)
	if input.Active {
		event, err = h.events.Activate(id)
	} else {
		event, err = h.events.Deactivate(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
