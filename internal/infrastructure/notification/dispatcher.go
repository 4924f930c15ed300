package notification

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"learnalert/internal/domain/constant"
	"learnalert/internal/infrastructure/scheduler"
	appErrors "learnalert/internal/pkg/errors"
	"learnalert/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// actionBuffer bounds the user-action stream so a slow consumer cannot
// block a submitter.
const actionBuffer = 16

// Notification is one pending, not-yet-delivered flashcard notification.
type Notification struct {
	ID        string
	Title     string
	Body      string
	ImagePath string // empty means text-only
	Category  string
	TriggerAt time.Time
}

type pendingEntry struct {
	entryID      cron.EntryID
	notification Notification
}

// Dispatcher registers calendar-triggered one-shot notifications and owns
// the pending set until delivery or cancellation. It is an explicit service
// object constructed once at process start; user interactions with delivered
// notifications surface as a stream of actions rather than mutable callback
// hooks.
type Dispatcher struct {
	scheduler *scheduler.Scheduler
	log       logger.Logger

	mu      sync.Mutex
	pending map[string]pendingEntry
	granted bool

	deliverFunc func(Notification)
	actions     chan constant.Action
}

// NewDispatcher creates a new Dispatcher on top of the cron scheduler.
func NewDispatcher(sched *scheduler.Scheduler, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		scheduler: sched,
		log:       log,
		pending:   make(map[string]pendingEntry),
		actions:   make(chan constant.Action, actionBuffer),
	}
}

// SetDeliveryHandler sets the function invoked when a notification fires.
// Called during wiring in main; delivery is a no-op until it is set.
func (d *Dispatcher) SetDeliveryHandler(handler func(Notification)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deliverFunc = handler
}

// RequestPermission requests authorization for notification delivery.
// Until it has been called once in the process lifetime, fired
// notifications are suppressed silently. Scheduling never checks it.
func (d *Dispatcher) RequestPermission(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.granted = true
	d.log.Info("Notification permission requested. Granted: true")
	return d.granted
}

// formatCronSpec generates a cron spec string for a specific time.
func formatCronSpec(t time.Time) string {
	// Seconds Minutes Hours DayOfMonth Month DayOfWeek
	return fmt.Sprintf("%d %d %d %d %d *", t.Second(), t.Minute(), t.Hour(), t.Day(), t.Month())
}

// ScheduleOne registers exactly one notification under a fresh unique
// identifier, firing at triggerAt. Registration failures are logged, not
// surfaced, and do not block subsequent calls. No idempotency: calling
// twice with the same parameters produces two independent notifications.
func (d *Dispatcher) ScheduleOne(ctx context.Context, title, body, imagePath string, triggerAt time.Time) {
	n := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		ImagePath: imagePath,
		Category:  constant.CategoryFlashcardActions,
		TriggerAt: triggerAt,
	}

	jobFunc := func() {
		d.fire(n)
	}

	entryID, err := d.scheduler.AddJob(formatCronSpec(triggerAt), jobFunc)
	if err != nil {
		d.log.Error(fmt.Sprintf("Failed to register notification %s at %v", n.ID, triggerAt), err)
		return
	}

	d.mu.Lock()
	d.pending[n.ID] = pendingEntry{entryID: entryID, notification: n}
	d.mu.Unlock()
	d.log.Info(fmt.Sprintf("Scheduled notification %s at %v (Job ID: %d)", n.ID, triggerAt, entryID))
}

// fire delivers a notification and retires its pending entry.
func (d *Dispatcher) fire(n Notification) {
	d.mu.Lock()
	entry, ok := d.pending[n.ID]
	if ok {
		delete(d.pending, n.ID)
	}
	granted := d.granted
	deliver := d.deliverFunc
	d.mu.Unlock()

	if !ok {
		// Cancelled between trigger and execution.
		return
	}
	d.scheduler.RemoveJob(entry.entryID)

	if !granted {
		d.log.Debug(fmt.Sprintf("Notification %s fired without permission granted, suppressing delivery", n.ID))
		return
	}
	if deliver != nil {
		deliver(n)
	}
}

// CancelAll removes every currently pending notification, regardless of
// which scheduling call created them. Already-delivered notifications are
// unaffected.
func (d *Dispatcher) CancelAll(ctx context.Context) {
	d.mu.Lock()
	entries := make([]pendingEntry, 0, len(d.pending))
	for id, entry := range d.pending {
		entries = append(entries, entry)
		delete(d.pending, id)
	}
	d.mu.Unlock()

	for _, entry := range entries {
		d.scheduler.RemoveJob(entry.entryID)
	}
	d.log.Info(fmt.Sprintf("Cancelled %d pending notifications", len(entries)))
}

// Pending returns a snapshot of the pending notifications ordered by
// trigger time.
func (d *Dispatcher) Pending() []Notification {
	d.mu.Lock()
	list := make([]Notification, 0, len(d.pending))
	for _, entry := range d.pending {
		list = append(list, entry.notification)
	}
	d.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].TriggerAt.Before(list[j].TriggerAt)
	})
	return list
}

// SubmitAction publishes a user interaction with a delivered notification
// onto the action stream. The identifier must belong to the registered
// flashcard category.
func (d *Dispatcher) SubmitAction(action constant.Action) error {
	valid := false
	for _, a := range constant.CategoryActions() {
		if a == action {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %s", appErrors.ErrUnknownAction, action)
	}

	select {
	case d.actions <- action:
		d.log.Debug(fmt.Sprintf("User action submitted: %s", action))
	default:
		d.log.Warn(fmt.Sprintf("Action stream full, dropping action %s", action))
	}
	return nil
}

// Actions exposes the stream of user-action events for the engine's owner
// to consume.
func (d *Dispatcher) Actions() <-chan constant.Action {
	return d.actions
}
