package calendar

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docshelf/internal/models"
)

type fakeSource struct {
	rev   uint64
	docs  []*models.Document
	err   error
	lists int
}

func (f *fakeSource) Revision() uint64 { return f.rev }

func (f *fakeSource) ListDocuments(context.Context) ([]*models.Document, error) {
	f.lists++
	return f.docs, f.err
}

type countingObserver struct {
	derivations atomic.Int64
	hits        atomic.Int64
	lastEvents  atomic.Int64
}

func (o *countingObserver) ObserveDerivation(_, events int) {
	o.derivations.Add(1)
	o.lastEvents.Store(int64(events))
}

func (o *countingObserver) ObserveCacheHit() { o.hits.Add(1) }

func TestMemo_RecomputesOnlyOnRevisionChange(t *testing.T) {
	bill := doc("bill", models.CategoryUtilityBill, "2024-01-01", "")
	src := &fakeSource{rev: 1, docs: []*models.Document{&bill}}
	obs := &countingObserver{}
	memo := NewMemo(src, obs)
	ctx := context.Background()

	first, err := memo.Events(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := memo.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.lists)
	assert.EqualValues(t, 1, obs.derivations.Load())
	assert.EqualValues(t, 1, obs.hits.Load())

	record := doc("record", models.CategoryMedicalRecord, "2024-05-01", "")
	src.docs = append(src.docs, &record)
	src.rev = 2

	third, err := memo.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, src.lists)
	assert.EqualValues(t, 2, obs.lastEvents.Load())
}

func TestMemo_ReturnsCopies(t *testing.T) {
	bill := doc("bill", models.CategoryUtilityBill, "2024-01-01", "")
	memo := NewMemo(&fakeSource{rev: 1, docs: []*models.Document{&bill}}, nil)
	ctx := context.Background()

	first, err := memo.Events(ctx)
	require.NoError(t, err)
	first[0].Title = "changed"

	second, err := memo.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Doc bill due", second[0].Title)
}

func TestMemo_ErrorIsNotCached(t *testing.T) {
	src := &fakeSource{rev: 1, err: errors.New("disk gone")}
	memo := NewMemo(src, nil)
	ctx := context.Background()

	_, err := memo.Events(ctx)
	require.Error(t, err)

	src.err = nil
	events, err := memo.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 2, src.lists)
}

func TestMemo_Invalidate(t *testing.T) {
	src := &fakeSource{rev: 7}
	memo := NewMemo(src, nil)
	ctx := context.Background()

	_, err := memo.Events(ctx)
	require.NoError(t, err)
	memo.Invalidate()
	_, err = memo.Events(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, src.lists)
}
