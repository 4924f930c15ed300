package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"learnalert/internal/application/dto"
	"learnalert/internal/domain/constant"
	"learnalert/internal/domain/entity"
	"learnalert/internal/infrastructure/notification"
	appErrors "learnalert/internal/pkg/errors"
	"learnalert/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDeckRepo struct {
	deck *entity.Deck
	err  error
}

func (r *fakeDeckRepo) FindByID(ctx context.Context, id uint) (*entity.Deck, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.deck == nil || r.deck.ID != id {
		return nil, fmt.Errorf("failed to find deck: %w", gorm.ErrRecordNotFound)
	}
	return r.deck, nil
}

func (r *fakeDeckRepo) FindAll(ctx context.Context) ([]*entity.Deck, error) { return nil, nil }
func (r *fakeDeckRepo) Create(ctx context.Context, deck *entity.Deck) (uint, error) {
	return 0, nil
}
func (r *fakeDeckRepo) Update(ctx context.Context, deck *entity.Deck) error { return nil }
func (r *fakeDeckRepo) Delete(ctx context.Context, id uint) error           { return nil }

type scheduledCall struct {
	title     string
	body      string
	imagePath string
	triggerAt time.Time
}

type fakeDispatcher struct {
	mu        sync.Mutex
	scheduled []scheduledCall
	cancelled int
	actions   chan constant.Action
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{actions: make(chan constant.Action, 4)}
}

func (d *fakeDispatcher) ScheduleOne(ctx context.Context, title, body, imagePath string, triggerAt time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scheduled = append(d.scheduled, scheduledCall{title, body, imagePath, triggerAt})
}

func (d *fakeDispatcher) CancelAll(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelled++
}

func (d *fakeDispatcher) cancelCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelled
}

func (d *fakeDispatcher) Pending() []notification.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	pending := make([]notification.Notification, len(d.scheduled))
	for i, call := range d.scheduled {
		pending[i] = notification.Notification{
			ID:        fmt.Sprintf("n-%d", i),
			Title:     call.title,
			Body:      call.body,
			ImagePath: call.imagePath,
			TriggerAt: call.triggerAt,
		}
	}
	return pending
}

func (d *fakeDispatcher) Actions() <-chan constant.Action { return d.actions }

// fakeRenderer fails for any text containing failOn (when non-empty).
type fakeRenderer struct {
	failOn string
}

func (r *fakeRenderer) Render(text string) ([]byte, error) {
	if r.failOn != "" && strings.Contains(text, r.failOn) {
		return nil, fmt.Errorf("%w: font missing", appErrors.ErrRendering)
	}
	return []byte("png:" + text), nil
}

type fakeAssets struct {
	persisted int
	err       error
}

func (a *fakeAssets) Persist(png []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.persisted++
	return fmt.Sprintf("/tmp/assets/%d.png", a.persisted), nil
}

type fakeHeartbeat struct {
	mu       sync.Mutex
	interval time.Duration
	running  bool
	starts   int
	stops    int
}

func (h *fakeHeartbeat) Start(interval time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.interval = interval
	h.running = true
	h.starts++
}

func (h *fakeHeartbeat) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.running = false
	h.stops++
}

func (h *fakeHeartbeat) Remaining() (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interval, h.running
}

func (h *fakeHeartbeat) Interval() (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interval, h.running
}

func (h *fakeHeartbeat) stopCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stops
}

func testDeck(fronts ...string) *entity.Deck {
	deck := &entity.Deck{ID: 1, Name: "Capitals"}
	topic := entity.Topic{ID: 1, DeckID: 1, Name: "Europe"}
	for i, front := range fronts {
		topic.Cards = append(topic.Cards, entity.Card{
			ID:      uint(i + 1),
			TopicID: 1,
			Front:   entity.CardSide{Text: front},
			Back:    entity.CardSide{Text: "back of " + front},
		})
	}
	deck.Topics = []entity.Topic{topic}
	return deck
}

type studyFixture struct {
	svc        *studyService
	dispatcher *fakeDispatcher
	heartbeat  *fakeHeartbeat
	assets     *fakeAssets
	now        time.Time
}

func newStudyFixture(t *testing.T, deck *entity.Deck, renderer Renderer) *studyFixture {
	t.Helper()
	f := &studyFixture{
		dispatcher: newFakeDispatcher(),
		heartbeat:  &fakeHeartbeat{},
		assets:     &fakeAssets{},
		now:        time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	svc := NewStudyService(
		&fakeDeckRepo{deck: deck},
		f.dispatcher,
		renderer,
		f.assets,
		f.heartbeat,
		logger.New(),
	)
	f.svc = svc.(*studyService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestScheduleDeckSpacesTriggersEvenly(t *testing.T) {
	f := newStudyFixture(t, testDeck("Paris?", "Rome?", "Berlin?"), &fakeRenderer{})

	resp, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 600,
	})
	require.NoError(t, err)

	assert.Equal(t, "Capitals", resp.DeckName)
	assert.Equal(t, 3, resp.CardsScheduled)
	assert.Equal(t, 600, resp.IntervalSeconds)
	assert.Contains(t, resp.Message, "10m")

	require.Len(t, f.dispatcher.scheduled, 3)
	for i, call := range f.dispatcher.scheduled {
		assert.Equal(t, "LearnAlert", call.title)
		want := f.now.Add(time.Duration(i) * 600 * time.Second)
		assert.True(t, call.triggerAt.Equal(want), "card %d trigger time", i)
		assert.NotEmpty(t, call.imagePath)
	}
	assert.Equal(t, "Paris?", f.dispatcher.scheduled[0].body)
	assert.Equal(t, "Rome?", f.dispatcher.scheduled[1].body)
	assert.Equal(t, "Berlin?", f.dispatcher.scheduled[2].body)

	assert.Equal(t, 1, f.heartbeat.starts)
	assert.Equal(t, 600*time.Second, f.heartbeat.interval)
}

func TestScheduleDeckRejectsTooFewCards(t *testing.T) {
	f := newStudyFixture(t, testDeck("only one"), &fakeRenderer{})

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 60,
	})
	assert.ErrorIs(t, err, appErrors.ErrTooFewCards)

	// Rejected before any side effect.
	assert.Empty(t, f.dispatcher.scheduled)
	assert.Zero(t, f.heartbeat.starts)
	assert.Zero(t, f.assets.persisted)
}

func TestScheduleDeckEmptyDeckRejected(t *testing.T) {
	f := newStudyFixture(t, testDeck(), &fakeRenderer{})

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 60,
	})
	assert.ErrorIs(t, err, appErrors.ErrTooFewCards)
}

func TestScheduleDeckNotFound(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{})

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          42,
		IntervalSeconds: 60,
	})
	assert.ErrorIs(t, err, appErrors.ErrDeckNotFound)
	assert.Empty(t, f.dispatcher.scheduled)
}

func TestScheduleDeckRepositoryFailure(t *testing.T) {
	f := newStudyFixture(t, nil, &fakeRenderer{})
	f.svc.deckRepo = &fakeDeckRepo{err: errors.New("disk on fire")}

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 60,
	})
	assert.ErrorIs(t, err, appErrors.ErrDatabaseOperation)
}

func TestScheduleDeckDegradesOnRenderFailure(t *testing.T) {
	f := newStudyFixture(t, testDeck("first", "second", "third"), &fakeRenderer{failOn: "second"})

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 300,
	})
	require.NoError(t, err)

	// The failing card degrades to text-only; the rest keep their slots.
	require.Len(t, f.dispatcher.scheduled, 3)
	assert.NotEmpty(t, f.dispatcher.scheduled[0].imagePath)
	assert.Empty(t, f.dispatcher.scheduled[1].imagePath)
	assert.NotEmpty(t, f.dispatcher.scheduled[2].imagePath)
	for i, call := range f.dispatcher.scheduled {
		want := f.now.Add(time.Duration(i) * 300 * time.Second)
		assert.True(t, call.triggerAt.Equal(want), "card %d trigger time", i)
	}
}

func TestScheduleDeckDegradesOnPersistFailure(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{})
	f.assets.err = errors.New("tmpdir gone")

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 60,
	})
	require.NoError(t, err)

	require.Len(t, f.dispatcher.scheduled, 2)
	for _, call := range f.dispatcher.scheduled {
		assert.Empty(t, call.imagePath)
		assert.NotEmpty(t, call.body)
	}
}

func TestStopAll(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{})

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 60,
	})
	require.NoError(t, err)

	f.svc.StopAll(context.Background())
	assert.Equal(t, 1, f.heartbeat.stops)
	assert.Equal(t, 1, f.dispatcher.cancelled)
	assert.False(t, f.heartbeat.running)

	// Stopping again is harmless.
	f.svc.StopAll(context.Background())
	assert.Equal(t, 2, f.dispatcher.cancelled)
}

func TestCountdownState(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{})

	state := f.svc.CountdownState(context.Background())
	assert.False(t, state.Running)
	assert.Nil(t, state.RemainingSeconds)
	assert.Nil(t, state.IntervalSeconds)

	f.heartbeat.Start(90 * time.Second)
	state = f.svc.CountdownState(context.Background())
	assert.True(t, state.Running)
	require.NotNil(t, state.RemainingSeconds)
	require.NotNil(t, state.IntervalSeconds)
	assert.Equal(t, 90, *state.IntervalSeconds)
}

func TestPendingNotifications(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{failOn: "back of b"})

	_, err := f.svc.ScheduleDeck(context.Background(), dto.ScheduleRequest{
		DeckID:          1,
		IntervalSeconds: 60,
	})
	require.NoError(t, err)

	list := f.svc.PendingNotifications(context.Background())
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Body)
	assert.True(t, list[0].HasAttachment)
	assert.Equal(t, "b", list[1].Body)
	assert.False(t, list[1].HasAttachment)
}

func TestListenActionsStopInterval(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.svc.ListenActions(ctx)

	f.dispatcher.actions <- constant.ActionStopInterval

	assert.Eventually(t, func() bool {
		return f.dispatcher.cancelCount() == 1 && f.heartbeat.stopCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestListenActionsIgnoresInertActions(t *testing.T) {
	f := newStudyFixture(t, testDeck("a", "b"), &fakeRenderer{})

	ctx, cancel := context.WithCancel(context.Background())
	go f.svc.ListenActions(ctx)

	f.dispatcher.actions <- constant.ActionAcknowledgeEasy
	f.dispatcher.actions <- constant.ActionReviewAgain
	f.dispatcher.actions <- constant.ActionStopInterval

	assert.Eventually(t, func() bool {
		return f.dispatcher.cancelCount() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, f.heartbeat.stopCount(), "acknowledge and review actions must not stop the schedule")
	cancel()
}

func TestFormatInterval(t *testing.T) {
	assert.Equal(t, "45s", formatInterval(45*time.Second))
	assert.Equal(t, "10m", formatInterval(10*time.Minute))
	assert.Equal(t, "2h", formatInterval(2*time.Hour))
	assert.Equal(t, "1d", formatInterval(24*time.Hour))
	assert.Equal(t, "90s", formatInterval(90*time.Second))
}
