package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
)

var (
	// ErrQueueFull is returned when every worker is busy and the buffer is full.
	ErrQueueFull = errors.New("conversion queue is full")
	// ErrQueueClosed is returned after Close.
	ErrQueueClosed = errors.New("conversion queue is closed")
)

// inProcessQueue runs conversion jobs on a bounded worker pool inside the API process.
type inProcessQueue struct {
	jobs       chan service.ConversionJob
	handler    service.ConversionJobHandler
	jobTimeout time.Duration
	logger     *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewInProcessQueue starts workers goroutines draining a buffer of size queueSize.
// jobTimeout bounds a single job; zero means unbounded.
func NewInProcessQueue(handler service.ConversionJobHandler, workers, queueSize int, jobTimeout time.Duration, logger *slog.Logger) service.ConversionQueue {
	q := &inProcessQueue{
		jobs:       make(chan service.ConversionJob, queueSize),
		handler:    handler,
		jobTimeout: jobTimeout,
		logger:     logger,
	}

	q.wg.Add(workers)
	for range workers {
		go q.work()
	}

	return q
}

// Enqueue never blocks: the job is accepted or rejected immediately.
func (q *inProcessQueue) Enqueue(ctx context.Context, job service.ConversionJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	if job.RequestID == "" {
		job.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for queued jobs to finish.
func (q *inProcessQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()

		return nil
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()

	return nil
}

func (q *inProcessQueue) work() {
	defer q.wg.Done()

	for job := range q.jobs {
		q.run(job)
	}
}

func (q *inProcessQueue) run(job service.ConversionJob) {
	logger := q.logger.With(
		slog.String("request_id", job.RequestID),
		slog.String("order_id", job.OrderID.String()),
	)

	// The triggering request has already returned, so jobs get a fresh context.
	ctx := deliverycontext.WithLogger(context.Background(), logger)
	ctx = deliverycontext.WithRequestID(ctx, job.RequestID)
	if q.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.jobTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("[InProcessQueue] Conversion job panicked", slog.Any("panic", r))
		}
	}()

	if err := q.handler.HandleConversionJob(ctx, job); err != nil {
		logger.Error("[InProcessQueue] Conversion job failed", slog.Any("error", err))
	}
}
