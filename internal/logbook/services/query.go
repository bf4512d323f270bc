package services

import (
	"context"
	"time"

	"github.com/jgirmay/forgelog/internal/logbook/models"
	"github.com/jgirmay/forgelog/internal/logbook/repository"
	"github.com/jgirmay/forgelog/internal/logbook/timerange"
)

// Query retrieves events inside resolved time ranges with metrics and tags
// attached. An empty result is an empty slice, never an error.
type Query struct {
	events repository.EventRepository
	now    func() time.Time
}

// NewQuery creates an event query service. The clock defaults to time.Now.
func NewQuery(events repository.EventRepository) *Query {
	return &Query{events: events, now: time.Now}
}

// WithClock overrides the clock used to anchor range resolution.
func (q *Query) WithClock(now func() time.Time) *Query {
	q.now = now
	return q
}

// SelectRange retrieves events for a symbolic range token.
func (q *Query) SelectRange(ctx context.Context, token string) ([]models.Event, error) {
	start, end, err := timerange.Resolve(token, q.now())
	if err != nil {
		return nil, err
	}
	return q.events.FindByTimeRange(ctx, start, end)
}

// SelectDays retrieves events for the trailing n-day window.
func (q *Query) SelectDays(ctx context.Context, days int) ([]models.Event, error) {
	start, end, err := timerange.ResolveDays(days, q.now())
	if err != nil {
		return nil, err
	}
	return q.events.FindByTimeRange(ctx, start, end)
}

// SelectToday retrieves events from the current calendar day.
func (q *Query) SelectToday(ctx context.Context) ([]models.Event, error) {
	return q.SelectRange(ctx, timerange.Today)
}

// SelectWeek retrieves events from the current day and the six preceding days.
func (q *Query) SelectWeek(ctx context.Context) ([]models.Event, error) {
	return q.SelectRange(ctx, timerange.Week)
}

// SelectMonth retrieves events from the trailing 30-day window.
func (q *Query) SelectMonth(ctx context.Context) ([]models.Event, error) {
	return q.SelectRange(ctx, timerange.Month)
}

// SelectYear retrieves events from the trailing 365-day window.
func (q *Query) SelectYear(ctx context.Context) ([]models.Event, error) {
	return q.SelectRange(ctx, timerange.Year)
}
