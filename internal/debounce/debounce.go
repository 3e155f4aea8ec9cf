// Package debounce turns a stream of search keystrokes into at most one
// committed query per quiet period. Enter, clear, and scope changes bypass
// the timer; an in-flight timer is always cancelled and replaced so a stale
// keystroke can never commit.
package debounce

import (
	"sync"
	"time"

	"github.com/hberge/lobby/internal/criteria"
)

// DefaultDelay is the quiet period after the last keystroke before the
// pending value commits.
const DefaultDelay = 300 * time.Millisecond

// Scheduler abstracts the delay timer so commit logic is testable with a
// simulated clock. Schedule runs fn once after d; the returned cancel stops a
// pending fn and is a no-op after it fired.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules on the runtime timer heap.
type TimerScheduler struct{}

// Schedule implements Scheduler using time.AfterFunc.
func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// Controller wraps a search text input. OnChange fires synchronously on every
// Input call; OnCommit fires once per quiet period, or immediately on Flush,
// Clear, or a scope change with text present.
type Controller struct {
	delay    time.Duration
	sched    Scheduler
	onChange func(value string)
	onCommit func(value string, scope criteria.Scope)

	mu      sync.Mutex
	value   string
	scope   criteria.Scope
	pending func()
	closed  bool
}

// Options configure a Controller. Nil callbacks are allowed and skipped.
type Options struct {
	Delay     time.Duration // zero uses DefaultDelay
	Scheduler Scheduler     // nil uses TimerScheduler
	Scope     criteria.Scope
	OnChange  func(value string)
	OnCommit  func(value string, scope criteria.Scope)
}

// New builds a Controller.
func New(opts Options) *Controller {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = TimerScheduler{}
	}
	scope := opts.Scope
	if !criteria.ValidScope(scope) {
		scope = criteria.ScopeAll
	}
	return &Controller{
		delay:    delay,
		sched:    sched,
		scope:    scope,
		onChange: opts.OnChange,
		onCommit: opts.OnCommit,
	}
}

// Input records a keystroke: the change callback fires immediately and the
// commit timer restarts. Last keystroke wins.
func (c *Controller) Input(value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.value = value
	c.cancelLocked()
	c.pending = c.sched.Schedule(c.delay, func() { c.commitPending() })
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(value)
	}
}

// Flush commits the current value immediately, cancelling any pending timer.
// Bound to the Enter action.
func (c *Controller) Flush() {
	c.commitNow(nil)
}

// Clear empties the value and commits immediately.
func (c *Controller) Clear() {
	c.commitNow(func() {
		c.value = ""
	})
	if c.onChange != nil {
		c.onChange("")
	}
}

// SetScope records a new search scope. Scope is a discrete choice rather than
// freeform typing, so when text is present the pair re-commits immediately;
// waiting out the debounce window would fetch a stale scope/text combination.
func (c *Controller) SetScope(scope criteria.Scope) {
	if !criteria.ValidScope(scope) {
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.scope = scope
	hasText := c.value != ""
	c.mu.Unlock()

	if hasText {
		c.commitNow(nil)
	}
}

// Scope returns the current search scope.
func (c *Controller) Scope() criteria.Scope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope
}

// Value returns the latest input value, committed or not.
func (c *Controller) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Cancel drops any pending commit without firing it.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Close cancels any pending commit and rejects further input. Call on
// teardown so a timer cannot commit into a destroyed consumer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.closed = true
}

// commitPending is the timer path; the timer that fired may already have been
// superseded, in which case pending points elsewhere and this run still
// carries the latest value, so committing is correct.
func (c *Controller) commitPending() {
	c.commitNow(nil)
}

func (c *Controller) commitNow(prepare func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	if prepare != nil {
		prepare()
	}
	value, scope := c.value, c.scope
	commit := c.onCommit
	c.mu.Unlock()

	if commit != nil {
		commit(value, scope)
	}
}

func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}
