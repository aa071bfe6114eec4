package happyhourd

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the recommended stabilization window for
// keystroke input.
const DefaultDebounceDelay = 100 * time.Millisecond

// DebounceState is the debouncer's explicit state.
type DebounceState int

const (
	// DebounceIdle means no value has been staged yet, or the
	// debouncer was stopped.
	DebounceIdle DebounceState = iota
	// DebouncePending means a raw value is staged and its timer is
	// running; a new Set cancels it and restarts the window.
	DebouncePending
	// DebounceSettled means the last staged value survived its full
	// window and was delivered.
	DebounceSettled
)

// Debouncer stabilizes a rapidly-changing input value: the callback
// fires only after the raw value has been stable for the full delay.
// Any Set during the window cancels the pending stabilization
// outright and restarts the timer, so at most one timer is pending at
// a time and only the most recent value is ever delivered. This is
// the sole gate on how often the engine re-runs for keystroke input.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	mu      sync.Mutex
	state   DebounceState
	gen     uint64
	pending string
	settled string
	timer   *time.Timer
}

// NewDebouncer creates a debouncer that delivers settled values to
// fn. A delay of 0 uses DefaultDebounceDelay.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Set stages a new raw value, cancelling any pending stabilization.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.state = DebouncePending
	d.pending = value
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire delivers the pending value if it has not been superseded. The
// generation check covers the race where a timer fires concurrently
// with a Set that failed to Stop it in time.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.state != DebouncePending {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.state = DebounceSettled
	d.settled = value
	d.timer = nil
	d.mu.Unlock()

	d.fn(value)
}

// Flush settles the pending value immediately, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	gen := d.gen
	pending := d.state == DebouncePending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	if pending {
		d.fire(gen)
	}
}

// Stop cancels any pending stabilization and returns the debouncer to
// idle. It does not wait for an in-flight callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.state = DebounceIdle
}

// State returns the current debounce state.
func (d *Debouncer) State() DebounceState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Settled returns the last delivered value and whether one exists.
func (d *Debouncer) Settled() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled, d.state == DebounceSettled
}

// Coalescer schedules filter-driven recomputation as deferrable,
// latest-wins work: a new task submitted before the previous one runs
// replaces it, so intermediate filter states are superseded, never
// interleaved. Unlike the Debouncer it adds no delay; it only keeps
// filter work from ever blocking input-handling code, which returns
// from Submit immediately.
type Coalescer struct {
	mu      sync.Mutex
	pending func()
	stopped bool
	kick    chan struct{}
	done    chan struct{}
}

// NewCoalescer creates a coalescer and starts its worker.
func NewCoalescer() *Coalescer {
	c := &Coalescer{
		kick: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go c.run()
	return c
}

// Submit stages a task, replacing any not-yet-started one. It never
// blocks. The kick send happens under the lock so Close cannot close
// the channel between the stopped check and the send.
func (c *Coalescer) Submit(task func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.pending = task

	select {
	case c.kick <- struct{}{}:
	default:
	}
}

// Close stops the worker after any in-flight task finishes. Pending
// work that has not started is dropped.
func (c *Coalescer) Close() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.pending = nil
	close(c.kick)
	c.mu.Unlock()

	<-c.done
}

func (c *Coalescer) run() {
	defer close(c.done)
	for range c.kick {
		c.mu.Lock()
		task := c.pending
		c.pending = nil
		c.mu.Unlock()

		if task != nil {
			task()
		}
	}
}
