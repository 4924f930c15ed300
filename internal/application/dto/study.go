package dto

import "time"

// ScheduleRequest is the DTO for scheduling a deck's flashcards. The card
// sequence is recomputed from the database at the moment scheduling runs;
// nothing about the request is persisted.
type ScheduleRequest struct {
	DeckID          uint `json:"deck_id"`
	IntervalSeconds int  `json:"interval_seconds"`
}

// ScheduleResponse summarizes a successful scheduling run.
type ScheduleResponse struct {
	DeckName        string `json:"deck_name"`
	CardsScheduled  int    `json:"cards_scheduled"`
	IntervalSeconds int    `json:"interval_seconds"`
	Message         string `json:"message"`
}

// CountdownResponse is the DTO for the countdown heartbeat state.
// Remaining and interval are null while the countdown is stopped.
type CountdownResponse struct {
	Running          bool `json:"running"`
	RemainingSeconds *int `json:"remaining_seconds"`
	IntervalSeconds  *int `json:"interval_seconds"`
}

// ActionRequest is the DTO for a user interaction with a delivered
// notification's action buttons.
type ActionRequest struct {
	Action string `json:"action"`
}

// PermissionResponse is the DTO for the notification permission reply.
type PermissionResponse struct {
	Granted bool `json:"granted"`
}

// PendingNotificationResponse is the DTO for one pending notification.
type PendingNotificationResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	HasAttachment bool      `json:"has_attachment"`
	TriggerAt     time.Time `json:"trigger_at"`
}
