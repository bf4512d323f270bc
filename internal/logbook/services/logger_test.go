package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
	"github.com/jgirmay/forgelog/internal/logbook/repository"
)

// fixedNow anchors title dates and timestamps for assertions.
var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func newTestLogger(t *testing.T) (*Logger, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	l := NewLogger(repository.NewEventRepository(db), zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return l, db
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(s string) *string     { return &s }

func metricByName(t *testing.T, event *models.Event, name string) models.EventMetric {
	t.Helper()
	for _, m := range event.Metrics {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("metric %q not found", name)
	return models.EventMetric{}
}

func TestLogWorkout_Scenario(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), WorkoutRequest{
		Pushups: intp(20),
		Squats:  intp(0),
		Notes:   strp("felt good"),
	})
	require.NoError(t, err)

	assert.Equal(t, "workout 10-03-2025", event.Title)
	assert.Equal(t, models.EventWorkout, event.Type)
	require.NotNil(t, event.Notes)
	assert.Equal(t, "felt good", *event.Notes)

	require.Len(t, event.Metrics, 1, "zero-valued squats must not produce a metric")
	m := event.Metrics[0]
	assert.Equal(t, "pushups", m.Name)
	assert.Equal(t, 20.0, m.Value)
	require.NotNil(t, m.Unit)
	assert.Equal(t, "rep", *m.Unit)
}

func TestLogWorkout_OneMetricPerNonZeroCounter(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), WorkoutRequest{
		Dips:    intp(10),
		Planks:  intp(45),
		Pushups: intp(20),
		Pullups: intp(5),
		Rows:    intp(12),
		Situps:  intp(30),
		Squats:  intp(25),
	})
	require.NoError(t, err)
	require.Len(t, event.Metrics, 7)

	assert.Equal(t, "sec", *metricByName(t, event, "planks").Unit, "planks are timed holds")
	for _, name := range []string{"dips", "pushups", "pullups", "rows", "situps", "squats"} {
		assert.Equal(t, "rep", *metricByName(t, event, name).Unit, name)
	}
}

func TestLogWorkout_AbsentAndZeroCountersAreDropped(t *testing.T) {
	l, db := newTestLogger(t)

	event, err := l.Log(context.Background(), WorkoutRequest{
		Dips:   intp(0),
		Planks: nil,
	})
	require.NoError(t, err)
	assert.Empty(t, event.Metrics)

	var metricCount int64
	db.Model(&models.EventMetric{}).Count(&metricCount)
	assert.Zero(t, metricCount)
}

func TestLogGuitar_Scenario(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), GuitarRequest{
		Focus:   models.FocusScale,
		Minutes: floatp(15.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "guitar 10-03-2025", event.Title)
	require.Len(t, event.Metrics, 1)
	m := event.Metrics[0]
	assert.Equal(t, "guitar_scale", m.Name)
	assert.Equal(t, 15.5, m.Value)
	assert.Equal(t, "min", *m.Unit)
}

func TestLogGuitar_ValidationErrors(t *testing.T) {
	l, db := newTestLogger(t)
	ctx := context.Background()

	_, err := l.Log(ctx, GuitarRequest{Focus: models.FocusScale})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = l.Log(ctx, GuitarRequest{Focus: "ukulele", Minutes: floatp(10)})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	var eventCount int64
	db.Model(&models.Event{}).Count(&eventCount)
	assert.Zero(t, eventCount, "validation failures must not touch the store")
}

func TestLogActivity(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), ActivityRequest{
		Name:    "gaming",
		Minutes: floatp(42),
	})
	require.NoError(t, err)

	assert.Equal(t, "gaming 10-03-2025", event.Title)
	assert.Equal(t, models.EventActivity, event.Type)
	require.Len(t, event.Metrics, 1)
	assert.Equal(t, "gaming", event.Metrics[0].Name)
	assert.Equal(t, 42.0, event.Metrics[0].Value)
	assert.Nil(t, event.Metrics[0].Unit, "free-form activities carry no unit")
}

func TestLogActivity_RequiresNameAndMinutes(t *testing.T) {
	l, _ := newTestLogger(t)
	ctx := context.Background()

	_, err := l.Log(ctx, ActivityRequest{Minutes: floatp(10)})
	assert.True(t, apperr.IsValidation(err))

	_, err = l.Log(ctx, ActivityRequest{Name: "gaming"})
	assert.True(t, apperr.IsValidation(err))
}

func TestLogStudy(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), StudyRequest{
		Minutes: floatp(90),
		Topic:   strp("linear algebra"),
	})
	require.NoError(t, err)

	assert.Equal(t, "study 10-03-2025", event.Title)
	require.Len(t, event.Metrics, 1)
	assert.Equal(t, "study", event.Metrics[0].Name)
	assert.Equal(t, 90.0, event.Metrics[0].Value)
	assert.Equal(t, "min", *event.Metrics[0].Unit)
	require.NotNil(t, event.Notes)
	assert.Equal(t, "topic: linear algebra", *event.Notes)
}

func TestLogNote_CapturesRawText(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), NoteRequest{Text: "long day, good run"})
	require.NoError(t, err)

	assert.Equal(t, "note 10-03-2025", event.Title)
	assert.Empty(t, event.Metrics)
	require.NotNil(t, event.RawText)
	assert.Equal(t, "long day, good run", *event.RawText)
}

func TestLog_TimestampComesFromClock(t *testing.T) {
	l, _ := newTestLogger(t)

	event, err := l.Log(context.Background(), NoteRequest{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, event.Timestamp.UTC())
}
