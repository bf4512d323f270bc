// Package models defines the persisted entities of the activity log:
// events, their metrics, tags, tag associations and goals.
package models

import (
	"time"
)

// EventType enumerates the kinds of tracked activity.
type EventType string

const (
	EventWorkout  EventType = "workout"
	EventGuitar   EventType = "guitar"
	EventStudy    EventType = "study"
	EventNote     EventType = "note"
	EventActivity EventType = "activity"
)

// Valid reports whether t is one of the enumerated event types.
func (t EventType) Valid() bool {
	switch t {
	case EventWorkout, EventGuitar, EventStudy, EventNote, EventActivity:
		return true
	}
	return false
}

// GuitarFocus enumerates the focus areas of a guitar practice session.
type GuitarFocus string

const (
	FocusCourse  GuitarFocus = "course"
	FocusScale   GuitarFocus = "scale"
	FocusSong    GuitarFocus = "song"
	FocusWriting GuitarFocus = "writing"
	FocusTheory  GuitarFocus = "theory"
)

// Valid reports whether f is one of the enumerated focus areas.
func (f GuitarFocus) Valid() bool {
	switch f {
	case FocusCourse, FocusScale, FocusSong, FocusWriting, FocusTheory:
		return true
	}
	return false
}

// GoalPeriod enumerates the aggregation window of a goal.
type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "daily"
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
)

// Valid reports whether p is one of the enumerated goal periods.
func (p GoalPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Event represents one recorded occurrence of a tracked activity.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	Type      EventType `gorm:"type:varchar(20);not null" json:"type"`
	Title     string    `gorm:"size:100" json:"title"`
	RawText   *string   `gorm:"type:text" json:"raw_text"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Metrics   []EventMetric `gorm:"constraint:OnDelete:CASCADE" json:"metrics,omitempty"`
	EventTags []EventTag    `gorm:"constraint:OnDelete:CASCADE" json:"event_tags,omitempty"`
}

// EventMetric is one named, unit-tagged numeric measurement attached to an event.
type EventMetric struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Name      string    `gorm:"size:25;not null" json:"name"`
	Value     float64   `gorm:"not null" json:"value"`
	Unit      *string   `gorm:"size:10" json:"unit"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Tag is a reusable label attachable to events.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;unique;not null" json:"name"`
	Color     *string   `gorm:"size:20" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	EventTags []EventTag `gorm:"constraint:OnDelete:CASCADE" json:"event_tags,omitempty"`
}

// EventTag associates one Tag with one Event. One row per (event, tag) pair.
type EventTag struct {
	EventID   uint      `gorm:"primaryKey;autoIncrement:false" json:"event_id"`
	TagID     uint      `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Tag *Tag `json:"tag,omitempty"`
}

// Goal is a target value for a named metric over a recurring period.
type Goal struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	MetricName  string     `gorm:"size:50;not null" json:"metric_name"`
	Period      GoalPeriod `gorm:"type:varchar(20);not null" json:"period"`
	TargetValue float64    `gorm:"not null" json:"target_value"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// AllModels lists every persisted entity for migration.
func AllModels() []interface{} {
	return []interface{}{
		&Event{},
		&EventMetric{},
		&Tag{},
		&EventTag{},
		&Goal{},
	}
}
