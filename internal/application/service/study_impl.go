package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnalert/internal/application/dto"
	"learnalert/internal/domain/constant"
	"learnalert/internal/domain/repository"
	appErrors "learnalert/internal/pkg/errors"
	"learnalert/internal/pkg/logger"

	"gorm.io/gorm"
)

// notificationTitle is the title every scheduled card notification carries.
const notificationTitle = "LearnAlert"

type studyService struct {
	deckRepo   repository.DeckRepository
	dispatcher Dispatcher
	renderer   Renderer
	assets     AssetStore
	heartbeat  Heartbeat
	log        logger.Logger
	now        func() time.Time
}

// NewStudyService creates a new instance of StudyService implementation.
func NewStudyService(
	deckRepo repository.DeckRepository,
	dispatcher Dispatcher,
	renderer Renderer,
	assets AssetStore,
	heartbeat Heartbeat,
	log logger.Logger,
) StudyService {
	return &studyService{
		deckRepo:   deckRepo,
		dispatcher: dispatcher,
		renderer:   renderer,
		assets:     assets,
		heartbeat:  heartbeat,
		log:        log,
		now:        time.Now,
	}
}

// ScheduleDeck schedules one notification per flashcard in the deck.
// Card i (0-indexed) triggers at now + i×interval, so trigger times are
// strictly increasing and uniformly spaced. The notification body is the
// card's front text; the attachment, when rendering succeeds, is the
// rendered back text. Per-card rendering or persistence failure degrades
// that card to a text-only notification without aborting the rest.
func (s *studyService) ScheduleDeck(ctx context.Context, req dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	interval := time.Duration(req.IntervalSeconds) * time.Second

	deck, err := s.deckRepo.FindByID(ctx, req.DeckID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrDeckNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to load deck %d for scheduling", req.DeckID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if deck.CardCount() <= 1 {
		return nil, appErrors.ErrTooFewCards
	}

	if _, running := s.heartbeat.Remaining(); running {
		// Not guarded against: the new schedule is additive on top of
		// whatever is still pending, matching the original behavior.
		s.log.Warn(fmt.Sprintf("Scheduling deck %d while a schedule is already running", deck.ID))
	}

	cards := deck.FlattenCards()
	s.heartbeat.Start(interval)

	start := s.now()
	for i := range cards {
		card := &cards[i]
		triggerAt := start.Add(time.Duration(i) * interval)

		imagePath := ""
		png, err := s.renderer.Render(card.Back.Text)
		if err != nil {
			s.log.Warn(fmt.Sprintf("Rendering failed for card %d, scheduling text-only: %v", card.ID, err))
		} else if path, err := s.assets.Persist(png); err != nil {
			s.log.Warn(fmt.Sprintf("Persisting image failed for card %d, scheduling text-only: %v", card.ID, err))
		} else {
			imagePath = path
		}

		s.dispatcher.ScheduleOne(ctx, notificationTitle, card.Front.Text, imagePath, triggerAt)
	}

	msg := fmt.Sprintf("Scheduled %d Cards in %q on a %s interval", len(cards), deck.Name, formatInterval(interval))
	s.log.Info(msg)
	return &dto.ScheduleResponse{
		DeckName:        deck.Name,
		CardsScheduled:  len(cards),
		IntervalSeconds: req.IntervalSeconds,
		Message:         msg,
	}, nil
}

// StopAll stops the countdown heartbeat and cancels all pending
// notifications. Both effects are always invoked; the two subsystems are
// independent, so their order does not matter.
func (s *studyService) StopAll(ctx context.Context) {
	s.heartbeat.Stop()
	s.dispatcher.CancelAll(ctx)
	s.log.Info("Stopped countdown and cancelled all pending notifications.")
}

// CountdownState reports the countdown heartbeat for the UI.
func (s *studyService) CountdownState(ctx context.Context) dto.CountdownResponse {
	remaining, running := s.heartbeat.Remaining()
	if !running {
		return dto.CountdownResponse{Running: false}
	}
	interval, _ := s.heartbeat.Interval()
	remainingSec := int(remaining / time.Second)
	intervalSec := int(interval / time.Second)
	return dto.CountdownResponse{
		Running:          true,
		RemainingSeconds: &remainingSec,
		IntervalSeconds:  &intervalSec,
	}
}

// PendingNotifications lists the dispatcher's pending set in trigger order.
func (s *studyService) PendingNotifications(ctx context.Context) []dto.PendingNotificationResponse {
	pending := s.dispatcher.Pending()
	list := make([]dto.PendingNotificationResponse, len(pending))
	for i, n := range pending {
		list[i] = dto.PendingNotificationResponse{
			ID:            n.ID,
			Title:         n.Title,
			Body:          n.Body,
			HasAttachment: n.ImagePath != "",
			TriggerAt:     n.TriggerAt,
		}
	}
	return list
}

// ListenActions consumes the dispatcher's user-action stream. Only
// stop-interval has behavior; the acknowledge and review actions are
// accepted placeholders and are dropped here on purpose.
func (s *studyService) ListenActions(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case action, ok := <-s.dispatcher.Actions():
			if !ok {
				return
			}
			switch action {
			case constant.ActionStopInterval:
				s.log.Info("Stop-interval action received, stopping schedule.")
				s.StopAll(ctx)
			default:
				s.log.Debug(fmt.Sprintf("Ignoring inert action %s", action))
			}
		}
	}
}

// formatInterval renders an interval the way the schedule summary shows it.
func formatInterval(d time.Duration) string {
	switch {
	case d >= 24*time.Hour && d%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
}
