// Package export serializes retrieved events into the versioned JSON
// document consumed by downstream reporting and summarization.
//
// Field names and nesting are a compatibility contract; any incompatible
// change must bump SchemaVersion.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jgirmay/forgelog/internal/common/apperr"
	"github.com/jgirmay/forgelog/internal/logbook/models"
)

// SchemaVersion identifies the export document layout.
const SchemaVersion = 1

// Document is the top-level export payload.
type Document struct {
	SchemaVersion int         `json:"schema_version"`
	GeneratedAt   string      `json:"generated_at"`
	Label         *string     `json:"label"`
	EventCount    int         `json:"event_count"`
	Events        []eventRepr `json:"events"`
}

type eventRepr struct {
	ID        uint         `json:"id"`
	Timestamp *string      `json:"timestamp"`
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	RawText   *string      `json:"raw_text"`
	Notes     *string      `json:"notes"`
	CreatedAt *string      `json:"created_at"`
	Metrics   []metricRepr `json:"metrics"`
	Tags      []tagRepr    `json:"tags"`
}

type metricRepr struct {
	ID        uint    `json:"id"`
	EventID   uint    `json:"event_id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Unit      *string `json:"unit"`
	CreatedAt *string `json:"created_at"`
}

type tagRepr struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color"`
	CreatedAt *string `json:"created_at"`
}

// Formatter renders event collections as export documents.
type Formatter struct {
	now func() time.Time
}

// NewFormatter creates a formatter. The generation clock defaults to
// time.Now.
func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

// WithClock overrides the generation clock; the data itself is untouched.
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	f.now = now
	return f
}

// Format serializes events, in input order, into an indented UTF-8 JSON
// document. A nil label is emitted as null. Missing optional fields become
// null; only a structurally invalid event is an error.
func (f *Formatter) Format(events []models.Event, label *string) ([]byte, error) {
	reprs := make([]eventRepr, 0, len(events))
	for i := range events {
		repr, err := buildEventRepr(&events[i])
		if err != nil {
			return nil, err
		}
		reprs = append(reprs, repr)
	}

	doc := Document{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   f.now().UTC().Format(time.RFC3339Nano),
		Label:         label,
		EventCount:    len(reprs),
		Events:        reprs,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, apperr.Internal("failed to encode export document", err.Error())
	}
	return out, nil
}

func buildEventRepr(e *models.Event) (eventRepr, error) {
	if !e.Type.Valid() {
		return eventRepr{}, apperr.Internal(
			"malformed event",
			fmt.Sprintf("event %d has unknown type %q", e.ID, e.Type),
		)
	}

	repr := eventRepr{
		ID:        e.ID,
		Timestamp: isoTime(e.Timestamp),
		Type:      string(e.Type),
		Title:     e.Title,
		RawText:   e.RawText,
		Notes:     e.Notes,
		CreatedAt: isoTime(e.CreatedAt),
		Metrics:   make([]metricRepr, 0, len(e.Metrics)),
		Tags:      make([]tagRepr, 0, len(e.EventTags)),
	}

	for _, m := range e.Metrics {
		repr.Metrics = append(repr.Metrics, metricRepr{
			ID:        m.ID,
			EventID:   m.EventID,
			Name:      m.Name,
			Value:     m.Value,
			Unit:      m.Unit,
			CreatedAt: isoTime(m.CreatedAt),
		})
	}

	// Associations that no longer resolve to a tag are skipped, not errors.
	for _, et := range e.EventTags {
		if et.Tag == nil {
			continue
		}
		repr.Tags = append(repr.Tags, tagRepr{
			ID:        et.Tag.ID,
			Name:      et.Tag.Name,
			Color:     et.Tag.Color,
			CreatedAt: isoTime(et.Tag.CreatedAt),
		})
	}

	return repr, nil
}

// isoTime renders a timestamp as ISO-8601, or nil when unset.
func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
