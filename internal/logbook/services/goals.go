package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
	"github.com/jgirmay/forgelog/internal/logbook/repository"
	"github.com/jgirmay/forgelog/internal/logbook/timerange"
)

// periodDays maps a goal period to its trailing-window day count.
var periodDays = map[models.GoalPeriod]int{
	models.PeriodDaily:   1,
	models.PeriodWeekly:  7,
	models.PeriodMonthly: 30,
}

// GoalStatus is one active goal with its progress over the current period
// window.
type GoalStatus struct {
	Goal     models.Goal
	Current  float64
	Fraction float64
}

// Goals manages goal creation and progress reporting.
type Goals struct {
	goals repository.GoalRepository
	now   func() time.Time
}

// NewGoals creates a goal service. The clock defaults to time.Now.
func NewGoals(goals repository.GoalRepository) *Goals {
	return &Goals{goals: goals, now: time.Now}
}

// WithClock overrides the clock used to anchor period windows.
func (g *Goals) WithClock(now func() time.Time) *Goals {
	g.now = now
	return g
}

// Add creates an active goal for the named metric.
func (g *Goals) Add(ctx context.Context, name, metricName string, target float64, period models.GoalPeriod) (*models.Goal, error) {
	if name == "" {
		return nil, apperr.Validation("goal requires a name", "")
	}
	if metricName == "" {
		return nil, apperr.Validation("goal requires a metric name", "")
	}
	if !period.Valid() {
		return nil, apperr.Validation("invalid goal period", fmt.Sprintf("got %q, expected daily, weekly or monthly", period))
	}

	goal := &models.Goal{
		Name:        name,
		MetricName:  metricName,
		Period:      period,
		TargetValue: target,
		IsActive:    true,
	}
	if err := g.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Status reports progress for every active goal: the sum of matching metric
// values inside the goal's current period window against its target.
func (g *Goals) Status(ctx context.Context) ([]GoalStatus, error) {
	goals, err := g.goals.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]GoalStatus, 0, len(goals))
	for _, goal := range goals {
		start, end, err := timerange.ResolveDays(periodDays[goal.Period], g.now())
		if err != nil {
			return nil, err
		}
		current, err := g.goals.SumMetricInRange(ctx, goal.MetricName, start, end)
		if err != nil {
			return nil, err
		}
		status := GoalStatus{Goal: goal, Current: current}
		if goal.TargetValue > 0 {
			status.Fraction = current / goal.TargetValue
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
