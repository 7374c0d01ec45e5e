package service

import (
	"strings"
	"time"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"
)

type EventService struct {
	events *repository.EventRepo
}

func NewEventService(events *repository.EventRepo) *EventService {
	return &EventService{events: events}
}

func (s *EventService) FindAll() ([]models.Event, error) {
	return s.events.FindAll()
}

func (s *EventService) FindByID(id uint) (*models.Event, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		return nil, notFound(err, "event", id)
	}
	return event, nil
}

func (s *EventService) FindActive() ([]models.Event, error) {
	return s.events.FindActive()
}

// FindCurrent returns events running today.
func (s *EventService) FindCurrent() ([]models.Event, error) {
	return s.events.FindCurrentOn(time.Now())
}

func (s *EventService) FindUpcoming() ([]models.Event, error) {
	return s.events.FindUpcoming(time.Now())
}

func (s *EventService) FindPast() ([]models.Event, error) {
	return s.events.FindPast(time.Now())
}

func (s *EventService) FindByLocation(location string) ([]models.Event, error) {
	return s.events.FindByLocation(location)
}

func (s *EventService) Save(event *models.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return validationErrorf("event name cannot be blank")
	}
	if strings.TrimSpace(event.Location) == "" {
		return validationErrorf("event location cannot be blank")
	}
	if models.DateOnly(event.StartDate).After(models.DateOnly(event.EndDate)) {
		return validationErrorf("event start date cannot be after end date")
	}
	return s.events.Save(event)
}

func (s *EventService) Deactivate(id uint) (*models.Event, error) {
	return s.setActive(id, false)
}

func (s *EventService) Activate(id uint) (*models.Event, error) {
	return s.setActive(id, true)
}

func (s *EventService) setActive(id uint, active bool) (*models.Event, error) {
	if err := s.events.SetActive(id, active); err != nil {
		return nil, err
	}
	return s.FindByID(id)
}
