package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Sink delivers a notice somewhere outside the process.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, n domain.Notice) error
}

// NoticeQueue fans notices out to every sink on a fixed set of workers.
// Notices are sharded by client name, so notices about one client are
// delivered in the order they were raised.
type NoticeQueue struct {
	workers []chan domain.Notice
	sinks   []Sink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewNoticeQueue creates a queue with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewNoticeQueue(numWorkers int, sinks []Sink, log zerolog.Logger) *NoticeQueue {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	q := &NoticeQueue{
		workers: make([]chan domain.Notice, numWorkers),
		sinks:   sinks,
		log:     log.With().Str("component", "notice_queue").Logger(),
	}
	for i := range q.workers {
		q.workers[i] = make(chan domain.Notice, channelBuffer)
	}
	return q
}

// Start launches the workers. They stop when ctx is cancelled; Wait
// blocks until they have.
func (q *NoticeQueue) Start(ctx context.Context) {
	for i, ch := range q.workers {
		q.wg.Add(1)
		go func(id int, ch <-chan domain.Notice) {
			defer q.wg.Done()
			q.runWorker(ctx, id, ch)
		}(i, ch)
	}
}

// Wait blocks until every worker has returned.
func (q *NoticeQueue) Wait() { q.wg.Wait() }

// Enqueue hands n to its worker without blocking. When the worker's buffer
// is full the notice is dropped and false is returned.
func (q *NoticeQueue) Enqueue(n domain.Notice) bool {
	idx := q.shardIndex(n.ClientName)
	select {
	case q.workers[idx] <- n:
		metrics.NoticeQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(q.workers[idx])))
		return true
	default:
		q.log.Warn().
			Str("kind", string(n.Kind)).
			Str("client", n.ClientName).
			Int("worker_id", idx).
			Msg("notice queue full, dropping notice")
		return false
	}
}

// shardIndex maps a client name deterministically to a worker index.
func (q *NoticeQueue) shardIndex(clientName string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientName))
	return int(h.Sum32() % uint32(len(q.workers)))
}

func (q *NoticeQueue) runWorker(ctx context.Context, id int, ch <-chan domain.Notice) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NoticeQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			q.deliver(ctx, id, n)
		}
	}
}

func (q *NoticeQueue) deliver(ctx context.Context, id int, n domain.Notice) {
	for _, s := range q.sinks {
		result := "ok"
		if err := s.Deliver(ctx, n); err != nil {
			result = "error"
			q.log.Error().Err(err).
				Str("sink", s.Name()).
				Str("kind", string(n.Kind)).
				Str("client", n.ClientName).
				Int("worker_id", id).
				Msg("notice delivery failed")
		}
		metrics.NoticesTotal.WithLabelValues(string(n.Kind), s.Name(), result).Inc()
	}
}
