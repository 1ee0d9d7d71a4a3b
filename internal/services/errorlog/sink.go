package errorlog

import (
	"sync"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/models"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const (
	maxQueueSize         = 50
	defaultFlushInterval = 30 * time.Second
)

// Store persists batches of client error reports
type Store interface {
	CreateBatch(logs []*models.ClientErrorLog) error
}

// Broadcaster pushes stored errors to live dashboard streams
type Broadcaster interface {
	BroadcastError(errorLog *models.ClientErrorLog)
}

// Sink buffers ingested client errors and writes them to storage in
// batches. A full queue or a critical entry flushes immediately;
// otherwise the ticker drains the buffer on its interval. A failed
// write puts the batch back so the next flush retries it.
type Sink struct {
	store       Store
	broadcaster Broadcaster
	interval    time.Duration

	mu    sync.Mutex
	queue []*models.ClientErrorLog

	stop chan struct{}
	done chan struct{}
}

// NewSink creates a sink flushing on the given interval.
// A non-positive interval falls back to the 30-second default.
func NewSink(store Store, broadcaster Broadcaster, interval time.Duration) *Sink {
	if interval <= 0 {
		interval = defaultFlushInterval
	}
	return &Sink{
		store:       store,
		broadcaster: broadcaster,
		interval:    interval,
	}
}

// Start launches the background flush loop
func (s *Sink) Start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Flush()
			case <-s.stop:
				s.Flush()
				return
			}
		}
	}()

	logrus.Infof("Error log sink started (flush interval: %s)", s.interval)
}

// Stop halts the loop after one final flush
func (s *Sink) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	logrus.Info("Error log sink stopped")
}

// Enqueue buffers one error report. Broadcast happens right away; the
// database write is deferred to the next flush unless the entry is
// critical or the buffer is full.
func (s *Sink) Enqueue(errorLog *models.ClientErrorLog) {
	if errorLog.OccurredAt.IsZero() {
		errorLog.OccurredAt = time.Now()
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastError(errorLog)
	}

	if errorLog.Severity == models.ErrorSeverityCritical {
		sentry.CaptureMessage(errorLog.Message)
	}

	s.mu.Lock()
	s.queue = append(s.queue, errorLog)
	full := len(s.queue) >= maxQueueSize
	s.mu.Unlock()

	if full || errorLog.Severity == models.ErrorSeverityCritical {
		s.Flush()
	}
}

// EnqueueBatch buffers a batch of reports from one ingestion request
func (s *Sink) EnqueueBatch(logs []*models.ClientErrorLog) {
	for _, errorLog := range logs {
		s.Enqueue(errorLog)
	}
}

// Flush writes everything currently buffered to storage
func (s *Sink) Flush() {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.queue
	s.queue = nil
	s.mu.Unlock()

	if err := s.store.CreateBatch(batch); err != nil {
		logrus.Warnf("Failed to flush %d client errors, re-queueing: %v", len(batch), err)
		s.mu.Lock()
		s.queue = append(batch, s.queue...)
		s.mu.Unlock()
		return
	}

	logrus.Debugf("Flushed %d client errors", len(batch))
}

// Pending reports how many entries are waiting for the next flush
func (s *Sink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}
