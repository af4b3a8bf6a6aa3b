package wlrender

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// rowSentinel values pushed onto the queue alongside real row indices.
// frameDone tells a worker the current frame's rows are all queued and it
// should post to the done semaphore and go back to waiting on start.
// workerExit tells a worker to return from its loop entirely.
const (
	frameDone  = -1
	workerExit = -2
)

// RenderJob is the state workers need to paint a frame. It is published
// by the main goroutine before start is posted and must not be mutated
// again until done is fenced.
type RenderJob struct {
	Grid       *Grid
	Surf       Surface
	CellWidth  int
	CellHeight int
	Cursor     Cursor
	BlinkOn    bool
	Selected   func(absRow, col int) bool
}

// WorkerPool is a fixed pool of N goroutines sharing a start/done
// semaphore pair and a mutex+cond-guarded FIFO row queue.
// golang.org/x/sync/semaphore supplies the counting semaphores;
// sync.Mutex and sync.Cond supply the queue's lock and condition
// variable, matching bubbletea's own use of sync.Mutex/sync.Cond for
// coordination where channels would not fit a fixed-width rendezvous.
type WorkerPool struct {
	n       int
	compositor *CellCompositor
	logger  Logger

	start *semaphore.Weighted
	done  *semaphore.Weighted

	mu    sync.Mutex
	cond  *sync.Cond
	queue []int
	job   RenderJob

	wg sync.WaitGroup
}

// NewWorkerPool builds a pool of n workers. n == 0 is valid: the pool
// exists, Start and Fence are no-ops, and Dispatch paints the rows inline
// on the caller's goroutine.
func NewWorkerPool(n int, compositor *CellCompositor, logger Logger) *WorkerPool {
	if logger == nil {
		logger = NopLogger{}
	}
	max := int64(n)
	if max < 1 {
		max = 1
	}
	wp := &WorkerPool{
		n:          n,
		compositor: compositor,
		logger:     logger,
		start:      semaphore.NewWeighted(max),
		done:       semaphore.NewWeighted(max),
	}
	wp.cond = sync.NewCond(&wp.mu)
	// Both semaphores start fully held, so Release acts as a post and
	// Acquire blocks until a matching post.
	wp.start.TryAcquire(max)
	wp.done.TryAcquire(max)
	return wp
}

// Start launches the n worker goroutines. It returns immediately; workers
// block on start until the first Dispatch.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.n; i++ {
		wp.wg.Add(1)
		go wp.loop()
	}
}

func (wp *WorkerPool) loop() {
	defer wp.wg.Done()
	ctx := context.Background()
	for {
		if err := wp.start.Acquire(ctx, 1); err != nil {
			return
		}
		if wp.runFrame(ctx) {
			return
		}
	}
}

// runFrame drains the queue until it sees a sentinel, reporting whether
// the worker should exit entirely.
func (wp *WorkerPool) runFrame(ctx context.Context) (exit bool) {
	for {
		wp.mu.Lock()
		for len(wp.queue) == 0 {
			wp.cond.Wait()
		}
		r := wp.queue[0]
		wp.queue = wp.queue[1:]
		wp.mu.Unlock()

		switch {
		case r >= 0:
			wp.renderRow(r)
		case r == frameDone:
			wp.done.Release(1)
			return false
		case r == workerExit:
			return true
		}
	}
}

func (wp *WorkerPool) renderRow(viewRow int) {
	wp.mu.Lock()
	job := wp.job
	wp.mu.Unlock()

	row := job.Grid.RowInView(viewRow)
	if !row.Dirty {
		return
	}
	absRow := (job.Grid.View + viewRow) % job.Grid.NumRows
	x := 0
	for col := 0; col < len(row.Cells); col++ {
		cell := &row.Cells[col]
		isCursor := job.Cursor.Row == absRow && job.Cursor.Col == col && !job.Cursor.Hidden
		selected := job.Selected != nil && job.Selected(absRow, col)
		cols := wp.compositor.Paint(job.Surf, cell, x*job.CellWidth, viewRow*job.CellHeight, PaintParams{
			IsCursor:   isCursor,
			CursorSt:   job.Cursor.Style,
			Selected:   selected,
			BlinkOn:    job.BlinkOn,
			CellWidth:  job.CellWidth,
			CellHeight: job.CellHeight,
		})
		x += cols
	}
	row.Dirty = false
}

// Dispatch publishes job and the rows to render this frame, then wakes
// every worker. Rows are pushed before any frameDone sentinel, and
// exactly n sentinels are pushed, one per worker, so Fence's wait count
// always matches.
func (wp *WorkerPool) Dispatch(job RenderJob, rows []int) {
	if wp.n == 0 {
		wp.renderInline(job, rows)
		return
	}
	wp.mu.Lock()
	wp.job = job
	wp.queue = append(wp.queue, rows...)
	for i := 0; i < wp.n; i++ {
		wp.queue = append(wp.queue, frameDone)
	}
	wp.mu.Unlock()
	wp.cond.Broadcast()
	wp.start.Release(int64(wp.n))
}

// Fence blocks until every worker has posted frameDone for this frame,
// i.e. until all row writes from this frame have completed. It is the
// total fence the cursor overlay and buffer commit sit strictly after.
func (wp *WorkerPool) Fence(ctx context.Context) error {
	if wp.n == 0 {
		return nil
	}
	return wp.done.Acquire(ctx, int64(wp.n))
}

// renderInline is the N==0 degenerate path: paint every row on the
// calling goroutine with no synchronization at all.
func (wp *WorkerPool) renderInline(job RenderJob, rows []int) {
	wp.job = job
	for _, r := range rows {
		wp.renderRow(r)
	}
}

// Shutdown stops every worker cooperatively: one workerExit sentinel per
// worker, broadcast, then a start post per worker so each can observe its
// sentinel and return. No goroutine is forcibly cancelled.
func (wp *WorkerPool) Shutdown() {
	if wp.n == 0 {
		return
	}
	wp.mu.Lock()
	for i := 0; i < wp.n; i++ {
		wp.queue = append(wp.queue, workerExit)
	}
	wp.mu.Unlock()
	wp.cond.Broadcast()
	wp.start.Release(int64(wp.n))
	wp.wg.Wait()
}
