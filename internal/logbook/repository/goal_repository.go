package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a goal repository over db.
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return apperr.FromStore(err, "goal")
	}
	return nil
}

func (r *goalRepository) SumMetricInRange(ctx context.Context, metricName string, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.EventMetric{}).
		Joins("JOIN events ON events.id = event_metrics.event_id").
		Where("event_metrics.name = ?", metricName).
		Where("events.timestamp >= ? AND events.timestamp <= ?", start, end).
		Select("COALESCE(SUM(event_metrics.value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperr.FromStore(err, "metric sum")
	}
	return total, nil
}

func (r *goalRepository) ListActive(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at, id").
		Find(&goals).Error
	if err != nil {
		return nil, apperr.FromStore(err, "goals")
	}
	return goals, nil
}
