package models

import "time"

// Event is a bounded-date sales occasion (trade show, fair) that scopes
// every sale. Dates are inclusive on both ends.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	Description string    `json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

// DateOnly strips the time-of-day so date comparisons ignore hours.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CoversDate reports whether d falls inside [StartDate, EndDate],
// boundaries included. A sale on the closing day still belongs to the
// event.
func (e *Event) CoversDate(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(e.StartDate)) && !day.After(DateOnly(e.EndDate))
}

// IsCurrentlyActiveOn is the flag AND the date range check; the entity
// can be administratively disabled mid-event.
func (e *Event) IsCurrentlyActiveOn(d time.Time) bool {
	return e.IsActive && e.CoversDate(d)
}

func (e *Event) IsCurrentlyActive() bool {
	return e.IsCurrentlyActiveOn(time.Now())
}

// DurationInDays counts calendar days, both endpoints included.
func (e *Event) DurationInDays() int {
	return int(DateOnly(e.EndDate).Sub(DateOnly(e.StartDate)).Hours()/24) + 1
}
