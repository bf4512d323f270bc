package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
)

func TestTagCreate_DuplicateNameIsIntegrityError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Tag{Name: "fitness"}))

	err := repo.Create(ctx, &models.Tag{Name: "fitness"})
	require.Error(t, err)
	assert.True(t, apperr.IsIntegrity(err))
}

func TestTagGetByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Tag{Name: "music", Color: strptr("#123456")}))

	tag, err := repo.GetByName(ctx, "music")
	require.NoError(t, err)
	assert.Equal(t, "music", tag.Name)

	_, err = repo.GetByName(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAttachToEvent_MissingReferences(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	err := tags.AttachToEvent(ctx, 1, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err), "missing event must be a not-found error, not a silent skip")

	event := &models.Event{Timestamp: time.Now().UTC(), Type: models.EventNote, Title: "note"}
	require.NoError(t, events.CreateWithMetrics(ctx, event))

	err = tags.AttachToEvent(ctx, event.ID, 999)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAttachToEvent_DuplicatePairIsIntegrityError(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	event := &models.Event{Timestamp: time.Now().UTC(), Type: models.EventNote, Title: "note"}
	require.NoError(t, events.CreateWithMetrics(ctx, event))
	tag := &models.Tag{Name: "journal"}
	require.NoError(t, tags.Create(ctx, tag))

	require.NoError(t, tags.AttachToEvent(ctx, event.ID, tag.ID))

	err := tags.AttachToEvent(ctx, event.ID, tag.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsIntegrity(err))
}

func TestTagDelete_CascadesAssociationsKeepsEvents(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	event := &models.Event{Timestamp: time.Now().UTC(), Type: models.EventNote, Title: "note"}
	require.NoError(t, events.CreateWithMetrics(ctx, event))
	tag := &models.Tag{Name: "journal"}
	require.NoError(t, tags.Create(ctx, tag))
	require.NoError(t, tags.AttachToEvent(ctx, event.ID, tag.ID))

	require.NoError(t, tags.Delete(ctx, tag.ID))

	var assocCount, eventCount int64
	db.Model(&models.EventTag{}).Count(&assocCount)
	db.Model(&models.Event{}).Count(&eventCount)
	assert.Zero(t, assocCount)
	assert.Equal(t, int64(1), eventCount)
}
