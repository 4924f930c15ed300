package countdown

import (
	"fmt"
	"sync"
	"time"

	"learnalert/internal/pkg/logger"
)

// Countdown is the interval heartbeat shown while flashcards are scheduled.
// It has two states: Stopped (no remaining value) and Running. While running
// it ticks once per second, counting down from the configured interval and
// resetting to the full interval when it runs out — it never terminates on
// its own. It carries no awareness of individual notifications.
type Countdown struct {
	mu        sync.Mutex
	interval  time.Duration
	remaining time.Duration
	running   bool
	done      chan struct{}
	tick      time.Duration // one tick per second; overridable in tests
	log       logger.Logger
}

// New creates a stopped Countdown.
func New(log logger.Logger) *Countdown {
	return &Countdown{
		tick: time.Second,
		log:  log,
	}
}

// Start transitions to Running with remaining = interval and begins the
// repeating tick. Starting while already running replaces the previous run.
func (c *Countdown) Start(interval time.Duration) {
	c.Stop()

	c.mu.Lock()
	c.interval = interval
	c.remaining = interval
	c.running = true
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go c.loop(done)
	c.log.Info(fmt.Sprintf("Countdown started with interval %v", interval))
}

func (c *Countdown) loop(done chan struct{}) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c.step()
		}
	}
}

// step advances the countdown by one second. Reaching zero resets the
// remaining time to the full interval so the cycle repeats indefinitely.
func (c *Countdown) step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.remaining -= time.Second
	if c.remaining <= 0 {
		c.remaining = c.interval
	}
}

// Stop cancels the tick and transitions to Stopped. Stopping an
// already-stopped countdown is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	close(c.done)
	c.done = nil
	c.running = false
	c.remaining = 0
	c.log.Info("Countdown stopped.")
}

// Remaining reports the current remaining time. The boolean is false when
// the countdown is stopped.
func (c *Countdown) Remaining() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return 0, false
	}
	return c.remaining, true
}

// Interval reports the configured interval length of the current run.
func (c *Countdown) Interval() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return 0, false
	}
	return c.interval, true
}
