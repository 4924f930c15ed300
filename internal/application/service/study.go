package service

import (
	"context"
	"time"

	"learnalert/internal/application/dto"
	"learnalert/internal/domain/constant"
	"learnalert/internal/infrastructure/notification"
)

// StudyService defines the interface for the flashcard scheduling engine.
type StudyService interface {
	// ScheduleDeck flattens the deck's cards into one ordered sequence and
	// schedules one notification per card at evenly spaced trigger times,
	// starting the countdown heartbeat alongside. Fails without side
	// effects when the deck holds one or fewer cards.
	ScheduleDeck(ctx context.Context, req dto.ScheduleRequest) (*dto.ScheduleResponse, error)
	// StopAll stops the countdown and cancels every pending notification.
	StopAll(ctx context.Context)
	// CountdownState reports the countdown heartbeat for the UI.
	CountdownState(ctx context.Context) dto.CountdownResponse
	// PendingNotifications lists the dispatcher's pending set.
	PendingNotifications(ctx context.Context) []dto.PendingNotificationResponse
	// ListenActions consumes the dispatcher's user-action stream until the
	// context is cancelled, mapping stop-interval to StopAll. Run it in its
	// own goroutine.
	ListenActions(ctx context.Context)
}

// Dispatcher is the notification registration surface the engine schedules
// through.
type Dispatcher interface {
	ScheduleOne(ctx context.Context, title, body, imagePath string, triggerAt time.Time)
	CancelAll(ctx context.Context)
	Pending() []notification.Notification
	Actions() <-chan constant.Action
}

// Renderer rasterizes card text into PNG bytes for an attachment.
type Renderer interface {
	Render(text string) ([]byte, error)
}

// AssetStore persists a rendered image and returns its path.
type AssetStore interface {
	Persist(png []byte) (string, error)
}

// Heartbeat is the countdown the engine starts and stops alongside the
// notification schedule.
type Heartbeat interface {
	Start(interval time.Duration)
	Stop()
	Remaining() (time.Duration, bool)
	Interval() (time.Duration, bool)
}
