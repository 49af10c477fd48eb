package session

import (
	"context"
	"errors"
	"sync"

	"chargeway/internal/domain/schedule"

	"github.com/looplab/fsm"
)

var ErrIllegalTransition = errors.New("illegal session state transition")

// Events driving the reservation lifecycle as observed through upstream polls.
const (
	EventStart    = "start"
	EventComplete = "complete"
	EventCancel   = "cancel"
	EventExpire   = "expire"
)

// Tracker guards the reservation status against out-of-order poll results.
// The upstream owns the real lifecycle; the tracker only refuses to move a
// local view backwards (e.g. COMPLETED back to IN_PROGRESS from a stale
// response).
type Tracker struct {
	mu  sync.Mutex
	fsm *fsm.FSM
}

func NewTracker(initial schedule.Status) *Tracker {
	if !initial.IsValid() {
		initial = schedule.StatusUpcoming
	}
	return &Tracker{
		fsm: fsm.NewFSM(
			string(initial),
			fsm.Events{
				{Name: EventStart, Src: []string{string(schedule.StatusUpcoming)}, Dst: string(schedule.StatusInProgress)},
				{Name: EventComplete, Src: []string{string(schedule.StatusInProgress)}, Dst: string(schedule.StatusCompleted)},
				{Name: EventCancel, Src: []string{string(schedule.StatusUpcoming)}, Dst: string(schedule.StatusCanceled)},
				{Name: EventExpire, Src: []string{string(schedule.StatusUpcoming)}, Dst: string(schedule.StatusExpired)},
			},
			fsm.Callbacks{},
		),
	}
}

func (t *Tracker) Current() schedule.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return schedule.Status(t.fsm.Current())
}

// Observe reconciles a freshly polled status with the tracked one. Reporting
// the current status again is a no-op; a status with no legal path from the
// current one is rejected.
func (t *Tracker) Observe(ctx context.Context, polled schedule.Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := schedule.Status(t.fsm.Current())
	if polled == current {
		return nil
	}

	event, ok := eventFor(polled)
	if !ok {
		return ErrIllegalTransition
	}
	if err := t.fsm.Event(ctx, event); err != nil {
		return errors.Join(ErrIllegalTransition, err)
	}
	return nil
}

func eventFor(target schedule.Status) (string, bool) {
	switch target {
	case schedule.StatusInProgress:
		return EventStart, true
	case schedule.StatusCompleted:
		return EventComplete, true
	case schedule.StatusCanceled:
		return EventCancel, true
	case schedule.StatusExpired:
		return EventExpire, true
	default:
		return "", false
	}
}
