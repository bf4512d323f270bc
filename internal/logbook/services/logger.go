// Package services implements the event logging, querying and goal
// operations on top of the repositories.
package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
	"github.com/jgirmay/forgelog/internal/logbook/repository"
)

// titleDateFormat renders dates as DD-MM-YYYY in event titles.
const titleDateFormat = "02-01-2006"

// LogRequest is one typed activity description. Each implementation
// carries only the fields relevant to its kind.
type LogRequest interface {
	eventType() models.EventType
}

// WorkoutRequest logs a workout with optional rep counters. A counter that
// is absent or zero produces no metric; zero reps and "not performed" are
// deliberately indistinguishable.
type WorkoutRequest struct {
	Dips    *int
	Planks  *int
	Pushups *int
	Pullups *int
	Rows    *int
	Situps  *int
	Squats  *int
	Notes   *string
}

func (WorkoutRequest) eventType() models.EventType { return models.EventWorkout }

// GuitarRequest logs a guitar practice session.
type GuitarRequest struct {
	Focus   models.GuitarFocus
	Minutes *float64
	Notes   *string
}

func (GuitarRequest) eventType() models.EventType { return models.EventGuitar }

// StudyRequest logs a study session.
type StudyRequest struct {
	Minutes *float64
	Topic   *string
	Notes   *string
}

func (StudyRequest) eventType() models.EventType { return models.EventStudy }

// ActivityRequest logs a free-form timed activity.
type ActivityRequest struct {
	Name    string
	Minutes *float64
	Notes   *string
}

func (ActivityRequest) eventType() models.EventType { return models.EventActivity }

// NoteRequest captures free text with no metrics.
type NoteRequest struct {
	Text  string
	Notes *string
}

func (NoteRequest) eventType() models.EventType { return models.EventNote }

// Logger constructs events with their derived metrics and commits them
// atomically.
type Logger struct {
	events repository.EventRepository
	log    *zap.Logger
	now    func() time.Time
}

// NewLogger creates an event logger. The clock defaults to time.Now.
func NewLogger(events repository.EventRepository, log *zap.Logger) *Logger {
	return &Logger{events: events, log: log, now: time.Now}
}

// WithClock overrides the clock; timestamps and title dates derive from it.
func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.now = now
	return l
}

// Log validates the request, builds the event plus its metrics and persists
// them in a single unit of work. On success the returned event carries its
// assigned identifier and resolved title.
func (l *Logger) Log(ctx context.Context, req LogRequest) (*models.Event, error) {
	now := l.now().UTC()

	event := &models.Event{
		Timestamp: now,
		Type:      req.eventType(),
	}

	switch r := req.(type) {
	case WorkoutRequest:
		event.Title = "workout " + now.Format(titleDateFormat)
		event.Notes = r.Notes
		event.Metrics = workoutMetrics(r)
	case GuitarRequest:
		if !r.Focus.Valid() {
			return nil, apperr.Validation("invalid guitar focus", fmt.Sprintf("got %q, expected one of: course, scale, song, writing, theory", r.Focus))
		}
		if r.Minutes == nil {
			return nil, apperr.Validation("guitar session requires minutes", "")
		}
		event.Title = "guitar " + now.Format(titleDateFormat)
		event.Notes = r.Notes
		event.Metrics = []models.EventMetric{
			{Name: "guitar_" + string(r.Focus), Value: *r.Minutes, Unit: ptr("min")},
		}
	case StudyRequest:
		if r.Minutes == nil {
			return nil, apperr.Validation("study session requires minutes", "")
		}
		event.Title = "study " + now.Format(titleDateFormat)
		event.Notes = studyNotes(r)
		event.Metrics = []models.EventMetric{
			{Name: "study", Value: *r.Minutes, Unit: ptr("min")},
		}
	case ActivityRequest:
		if r.Name == "" {
			return nil, apperr.Validation("activity requires a name", "")
		}
		if r.Minutes == nil {
			return nil, apperr.Validation("activity requires minutes", "")
		}
		event.Title = r.Name + " " + now.Format(titleDateFormat)
		event.Notes = r.Notes
		event.Metrics = []models.EventMetric{
			{Name: r.Name, Value: *r.Minutes},
		}
	case NoteRequest:
		if r.Text == "" {
			return nil, apperr.Validation("note requires text", "")
		}
		event.Title = "note " + now.Format(titleDateFormat)
		event.RawText = &r.Text
		event.Notes = r.Notes
	default:
		return nil, apperr.Validation("unsupported log request", fmt.Sprintf("%T", req))
	}

	if err := l.events.CreateWithMetrics(ctx, event); err != nil {
		return nil, err
	}

	l.log.Debug("logged event",
		zap.Uint("id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int("metrics", len(event.Metrics)),
	)
	return event, nil
}

// workoutMetrics builds one metric per present, non-zero counter. Planks
// are timed holds and carry "sec"; everything else is a rep count.
func workoutMetrics(r WorkoutRequest) []models.EventMetric {
	counters := []struct {
		name  string
		value *int
		unit  string
	}{
		{"dips", r.Dips, "rep"},
		{"planks", r.Planks, "sec"},
		{"pushups", r.Pushups, "rep"},
		{"pullups", r.Pullups, "rep"},
		{"rows", r.Rows, "rep"},
		{"squats", r.Squats, "rep"},
		{"situps", r.Situps, "rep"},
	}

	var metrics []models.EventMetric
	for _, c := range counters {
		if c.value == nil || *c.value == 0 {
			continue
		}
		metrics = append(metrics, models.EventMetric{
			Name:  c.name,
			Value: float64(*c.value),
			Unit:  ptr(c.unit),
		})
	}
	return metrics
}

// studyNotes folds the topic into the notes when no notes were given.
func studyNotes(r StudyRequest) *string {
	if r.Notes != nil {
		return r.Notes
	}
	if r.Topic != nil {
		return ptr("topic: " + *r.Topic)
	}
	return nil
}

func ptr(s string) *string { return &s }
