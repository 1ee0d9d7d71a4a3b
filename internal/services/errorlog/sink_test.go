package errorlog

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/models"
)

type fakeStore struct {
	mu      sync.Mutex
	batches [][]*models.ClientErrorLog
	fail    bool
}

func (f *fakeStore) CreateBatch(logs []*models.ClientErrorLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("db unavailable")
	}
	f.batches = append(f.batches, logs)
	return nil
}

func (f *fakeStore) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func (f *fakeStore) stored() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, b := range f.batches {
		total += len(b)
	}
	return total
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	seen []*models.ClientErrorLog
}

func (f *fakeBroadcaster) BroadcastError(errorLog *models.ClientErrorLog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, errorLog)
}

func entry(severity string) *models.ClientErrorLog {
	return &models.ClientErrorLog{
		Severity: severity,
		Category: "api",
		Message:  "something happened",
	}
}

func TestSinkBuffersUntilFlush(t *testing.T) {
	store := &fakeStore{}
	sink := NewSink(store, nil, time.Hour)

	sink.Enqueue(entry(models.ErrorSeverityWarning))
	sink.Enqueue(entry(models.ErrorSeverityError))

	if store.batchCount() != 0 {
		t.Fatalf("store received %d batches before flush, want 0", store.batchCount())
	}
	if sink.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", sink.Pending())
	}

	sink.Flush()

	if store.stored() != 2 {
		t.Errorf("stored = %d, want 2", store.stored())
	}
	if sink.Pending() != 0 {
		t.Errorf("Pending() after flush = %d, want 0", sink.Pending())
	}
}

func TestSinkCriticalFlushesImmediately(t *testing.T) {
	store := &fakeStore{}
	sink := NewSink(store, nil, time.Hour)

	sink.Enqueue(entry(models.ErrorSeverityCritical))

	if store.stored() != 1 {
		t.Errorf("stored = %d, want 1 (critical should flush)", store.stored())
	}
}

func TestSinkFullQueueFlushes(t *testing.T) {
	store := &fakeStore{}
	sink := NewSink(store, nil, time.Hour)

	for i := 0; i < maxQueueSize; i++ {
		sink.Enqueue(entry(models.ErrorSeverityInfo))
	}

	if store.stored() != maxQueueSize {
		t.Errorf("stored = %d, want %d", store.stored(), maxQueueSize)
	}
	if sink.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", sink.Pending())
	}
}

func TestSinkRequeuesOnStoreFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	sink := NewSink(store, nil, time.Hour)

	sink.Enqueue(entry(models.ErrorSeverityError))
	sink.Flush()

	if sink.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1 after failed flush", sink.Pending())
	}

	store.mu.Lock()
	store.fail = false
	store.mu.Unlock()

	sink.Flush()
	if store.stored() != 1 {
		t.Errorf("stored = %d, want 1 after retry", store.stored())
	}
}

func TestSinkBroadcastsOnEnqueue(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	sink := NewSink(&fakeStore{}, broadcaster, time.Hour)

	sink.Enqueue(entry(models.ErrorSeverityInfo))

	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	if len(broadcaster.seen) != 1 {
		t.Errorf("broadcast count = %d, want 1", len(broadcaster.seen))
	}
}

func TestSinkStampsOccurredAt(t *testing.T) {
	sink := NewSink(&fakeStore{}, nil, time.Hour)

	e := entry(models.ErrorSeverityInfo)
	sink.Enqueue(e)

	if e.OccurredAt.IsZero() {
		t.Error("OccurredAt was not stamped")
	}
}

func TestSinkIntervalFlush(t *testing.T) {
	store := &fakeStore{}
	sink := NewSink(store, nil, 10*time.Millisecond)
	sink.Start()
	defer sink.Stop()

	sink.Enqueue(entry(models.ErrorSeverityWarning))

	deadline := time.After(2 * time.Second)
	for store.stored() == 0 {
		select {
		case <-deadline:
			t.Fatal("interval flush never happened")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSinkStopFlushesRemainder(t *testing.T) {
	store := &fakeStore{}
	sink := NewSink(store, nil, time.Hour)
	sink.Start()

	sink.Enqueue(entry(models.ErrorSeverityInfo))
	sink.Stop()

	if store.stored() != 1 {
		t.Errorf("stored = %d, want 1 after Stop", store.stored())
	}
}
