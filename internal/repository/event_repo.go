package repository

import (
	"time"

	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) FindAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("start_date desc").Find(&events).Error
	return events, err
}

func (r *EventRepo) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepo) FindActive() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("is_active = ?", true).Order("start_date asc").Find(&events).Error
	return events, err
}

// FindCurrentOn returns active events whose date range contains the
// given day, both boundaries included.
func (r *EventRepo) FindCurrentOn(day time.Time) ([]models.Event, error) {
	d := models.DateOnly(day)
	var events []models.Event
	err := r.db.Where("start_date <= ? AND end_date >= ? AND is_active = ?", d, d, true).
		Order("start_date asc").
		Find(&events).Error
	return events, err
}

// FindUpcoming returns active events that have not started yet,
// soonest first. Together with FindCurrentOn and FindPast this
// partitions events into three non-overlapping views; an event ending
// today is current, not past.
func (r *EventRepo) FindUpcoming(day time.Time) ([]models.Event, error) {
	d := models.DateOnly(day)
	var events []models.Event
	err := r.db.Where("start_date > ? AND is_active = ?", d, true).
		Order("start_date asc").
		Find(&events).Error
	return events, err
}

// FindPast returns active events that ended strictly before the given
// day, most recent first. Deactivated events are hidden from all three
// views and stay reachable through FindAll.
func (r *EventRepo) FindPast(day time.Time) ([]models.Event, error) {
	d := models.DateOnly(day)
	var events []models.Event
	err := r.db.Where("end_date < ? AND is_active = ?", d, true).
		Order("start_date desc").
		Find(&events).Error
	return events, err
}

func (r *EventRepo) FindByLocation(location string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("LOWER(location) LIKE LOWER(?)", "%"+location+"%").Find(&events).Error
	return events, err
}

func (r *EventRepo) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepo) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Event{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *EventRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
