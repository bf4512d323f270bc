package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates an event repository over db.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// CreateWithMetrics inserts the event row and every attached metric inside
// one transaction so an event never exists without its metrics.
func (r *eventRepository) CreateWithMetrics(ctx context.Context, event *models.Event) error {
	metrics := event.Metrics
	event.Metrics = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		for i := range metrics {
			metrics[i].EventID = event.ID
			if err := tx.Create(&metrics[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperr.FromStore(err, "event")
	}

	event.Metrics = metrics
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Metrics").
		Preload("EventTags.Tag").
		First(&event, id).Error
	if err != nil {
		return nil, apperr.FromStore(err, "event")
	}
	return &event, nil
}

func (r *eventRepository) FindByTimeRange(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Preload("Metrics").
		Preload("EventTags.Tag").
		Order("timestamp, id").
		Find(&events).Error
	if err != nil {
		return nil, apperr.FromStore(err, "events")
	}
	return events, nil
}

func (r *eventRepository) AddMetric(ctx context.Context, eventID uint, metric *models.EventMetric) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Select("id").First(&event, eventID).Error; err != nil {
			return err
		}
		metric.EventID = eventID
		return tx.Create(metric).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("event")
	}
	if err != nil {
		return apperr.FromStore(err, "event metric")
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return apperr.FromStore(result.Error, "event")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("event")
	}
	return nil
}
