package calendar

import (
	"context"
	"slices"
	"sync"

	"github.com/mmynk/docshelf/internal/models"
)

// Source is the read side of the document store the Memo derives from.
type Source interface {
	// Revision identifies the current document collection. It changes on
	// every document mutation.
	Revision() uint64

	ListDocuments(ctx context.Context) ([]*models.Document, error)
}

// Observer receives derivation statistics. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveDerivation(documents, events int)
	ObserveCacheHit()
}

// Memo caches the last DeriveEvents result keyed on the source revision, so
// unrelated requests do not re-derive the whole collection.
type Memo struct {
	src      Source
	observer Observer

	mu       sync.Mutex
	valid    bool
	revision uint64
	events   []models.CalendarEvent
}

// NewMemo creates a Memo over src. observer may be nil.
func NewMemo(src Source, observer Observer) *Memo {
	return &Memo{src: src, observer: observer}
}

// Events returns the derived events for the current collection, recomputing
// only when the revision has changed since the last call. The returned slice
// is the caller's to modify.
func (m *Memo) Events(ctx context.Context) ([]models.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rev := m.src.Revision()
	if m.valid && rev == m.revision {
		if m.observer != nil {
			m.observer.ObserveCacheHit()
		}
		return slices.Clone(m.events), nil
	}

	docs, err := m.src.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	flat := make([]models.Document, len(docs))
	for i, d := range docs {
		flat[i] = *d
	}
	events := DeriveEvents(flat)

	// A mutation may have landed while listing; keying on the revision read
	// before the list only ever causes one extra recompute.
	m.valid = true
	m.revision = rev
	m.events = events
	if m.observer != nil {
		m.observer.ObserveDerivation(len(docs), len(events))
	}
	return slices.Clone(events), nil
}

// Invalidate drops the cached result.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	m.valid = false
	m.events = nil
	m.mu.Unlock()
}
