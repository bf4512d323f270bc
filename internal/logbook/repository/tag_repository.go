package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a tag repository over db.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return apperr.FromStore(err, "tag")
	}
	return nil
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, apperr.FromStore(err, "tag")
	}
	return &tag, nil
}

// AttachToEvent verifies both references inside the transaction so a
// dangling event or tag id surfaces as NOT_FOUND rather than a bare
// constraint failure.
func (r *tagRepository) AttachToEvent(ctx context.Context, eventID, tagID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Select("id").First(&event, eventID).Error; err != nil {
			return reference("event", err)
		}
		var tag models.Tag
		if err := tx.Select("id").First(&tag, tagID).Error; err != nil {
			return reference("tag", err)
		}
		return tx.Create(&models.EventTag{EventID: eventID, TagID: tagID}).Error
	})
	if err != nil {
		var ae *apperr.AppError
		if errors.As(err, &ae) {
			return ae
		}
		return apperr.FromStore(err, "event tag")
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if result.Error != nil {
		return apperr.FromStore(result.Error, "tag")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("tag")
	}
	return nil
}

func reference(resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource)
	}
	return err
}
