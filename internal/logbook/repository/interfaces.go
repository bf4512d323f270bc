// Package repository provides data access for events, tags and goals over
// an injected GORM handle.
package repository

import (
	"context"
	"time"

	"github.com/jgirmay/forgelog/internal/logbook/models"
)

// EventRepository defines event data access.
type EventRepository interface {
	// CreateWithMetrics persists an event together with all metrics already
	// attached to it, atomically. On failure nothing is persisted.
	CreateWithMetrics(ctx context.Context, event *models.Event) error

	// GetByID retrieves one event with metrics and tag associations loaded.
	GetByID(ctx context.Context, id uint) (*models.Event, error)

	// FindByTimeRange retrieves all events whose timestamp lies inside
	// [start, end] (both bounds inclusive), with metrics and tag
	// associations loaded, ordered by timestamp then id.
	FindByTimeRange(ctx context.Context, start, end time.Time) ([]models.Event, error)

	// AddMetric appends one metric to an existing event.
	AddMetric(ctx context.Context, eventID uint, metric *models.EventMetric) error

	// Delete removes an event; its metrics and tag associations cascade.
	Delete(ctx context.Context, id uint) error
}

// TagRepository defines tag and tag-association data access.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByName(ctx context.Context, name string) (*models.Tag, error)

	// AttachToEvent associates a tag with an event. At most one
	// association per (event, tag) pair may exist.
	AttachToEvent(ctx context.Context, eventID, tagID uint) error

	// Delete removes a tag; its event associations cascade, events remain.
	Delete(ctx context.Context, id uint) error
}

// GoalRepository defines goal data access.
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	ListActive(ctx context.Context) ([]models.Goal, error)

	// SumMetricInRange sums the values of all metrics with the given name
	// whose owning event's timestamp lies inside [start, end].
	SumMetricInRange(ctx context.Context, metricName string, start, end time.Time) (float64, error)
}
