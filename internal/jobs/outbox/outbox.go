// Package outbox queues graph-sync tasks behind relational commits. The
// API layer commits to Postgres, enqueues, and returns; a worker drains
// the queue with bounded retries. The graph projection is eventually
// consistent and a failed sync never fails the triggering request.
package outbox

import (
	"context"
	"time"

	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type Task string

const (
	TaskSyncBorrowed  Task = "sync_borrowed"
	TaskSyncInventory Task = "sync_inventory"
)

// Enqueuer is what mutation-side services depend on.
type Enqueuer interface {
	Enqueue(task Task)
}

// Processor executes one task; the sync engine implements this.
type Processor interface {
	Process(ctx context.Context, task Task) error
}

type item struct {
	task     Task
	attempts int
}

type Outbox struct {
	log         *logger.Logger
	proc        Processor
	queue       chan item
	maxAttempts int
	retryDelay  time.Duration
}

func New(baseLog *logger.Logger, proc Processor, queueSize, maxAttempts int, retryDelay time.Duration) *Outbox {
	if queueSize < 1 {
		queueSize = 64
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Outbox{
		log:         baseLog.With("component", "SyncOutbox"),
		proc:        proc,
		queue:       make(chan item, queueSize),
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
	}
}

// Enqueue never blocks the request path; when the queue is full the task
// is dropped and logged, and the next full resync reconciles.
func (o *Outbox) Enqueue(task Task) {
	select {
	case o.queue <- item{task: task, attempts: 0}:
	default:
		o.log.Warn("Sync queue full, dropping task", "task", string(task))
	}
}

func (o *Outbox) Start(ctx context.Context) {
	go o.runLoop(ctx)
}

func (o *Outbox) runLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			o.log.Info("Sync outbox stopped")
			return
		case it := <-o.queue:
			o.handle(ctx, it)
		}
	}
}

func (o *Outbox) handle(ctx context.Context, it item) {
	err := o.proc.Process(ctx, it.task)
	if err == nil {
		return
	}

	it.attempts++
	if it.attempts >= o.maxAttempts {
		o.log.Error("Sync task failed, giving up",
			"task", string(it.task),
			"attempts", it.attempts,
			"error", err,
		)
		return
	}

	o.log.Warn("Sync task failed, will retry",
		"task", string(it.task),
		"attempts", it.attempts,
		"error", err,
	)
	retry := it
	time.AfterFunc(o.retryDelay, func() {
		// The run loop may have exited by the time the timer fires;
		// never park a retry in the channel nobody drains.
		if ctx.Err() != nil {
			return
		}
		select {
		case o.queue <- retry:
		default:
			o.log.Warn("Sync queue full, dropping retry", "task", string(retry.task))
		}
	})
}
