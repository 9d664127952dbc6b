// Package timer implements the Pomodoro-style focus timer: a phase
// machine (focus, short break, long break) driven by a one-second tick,
// with its countdown state persisted so a session survives restarts.
package timer

import (
	"fmt"
	"time"

	"github.com/harutoki/focusdeck/internal/domain"
)

// Phase identifies the current timer phase.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short-break"
	PhaseLongBreak  Phase = "long-break"
)

// Display returns a human-readable representation of the phase.
func (p Phase) Display() string {
	switch p {
	case PhaseFocus:
		return "Focus"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return string(p)
	}
}

// Durations configures the phase lengths.
type Durations struct {
	Focus          time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	LongBreakEvery int // Long break after every Nth completed focus session
}

// State is the persisted timer state.
type State struct {
	Phase             Phase `json:"phase"`
	RemainingSeconds  int   `json:"remainingSeconds"`
	Running           bool  `json:"running"`
	SessionsCompleted int   `json:"sessionsCompleted"` // Completed focus sessions
}

// Timer is the focus timer. It owns a single in-memory countdown field;
// the periodic tick is the only recurring operation and is independent
// of the task collection.
type Timer struct {
	store     domain.Store
	durations Durations
	state     State
}

// New creates a Timer, restoring persisted state when present.
func New(store domain.Store, durations Durations) *Timer {
	if durations.LongBreakEvery <= 0 {
		durations.LongBreakEvery = 4
	}
	t := &Timer{
		store:     store,
		durations: durations,
	}
	t.state = State{
		Phase:            PhaseFocus,
		RemainingSeconds: int(durations.Focus / time.Second),
	}
	var saved State
	if store != nil && store.Get(domain.StoreKeyTimer, &saved) && saved.RemainingSeconds >= 0 && saved.Phase != "" {
		saved.Running = false // Never resume mid-countdown across restarts
		t.state = saved
	}
	return t
}

// State returns the current timer state.
func (t *Timer) State() State {
	return t.state
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	return t.state.Running
}

// Start begins or resumes the countdown.
func (t *Timer) Start() {
	t.state.Running = true
	t.persist()
}

// Pause halts the countdown, keeping the remaining time.
func (t *Timer) Pause() {
	t.state.Running = false
	t.persist()
}

// Reset restores the current phase to its full duration and stops.
func (t *Timer) Reset() {
	t.state.Running = false
	t.state.RemainingSeconds = int(t.phaseDuration(t.state.Phase) / time.Second)
	t.persist()
}

// Skip advances to the next phase immediately. Skipping a focus phase
// does not count it as completed.
func (t *Timer) Skip() {
	t.advance(false)
	t.persist()
}

// Tick consumes one second of the countdown. When the countdown reaches
// zero the timer advances to the next phase and stops; a completed focus
// phase increments the session counter. Returns true if a phase ended on
// this tick.
func (t *Timer) Tick() bool {
	if !t.state.Running {
		return false
	}
	if t.state.RemainingSeconds > 0 {
		t.state.RemainingSeconds--
	}
	if t.state.RemainingSeconds > 0 {
		return false
	}
	t.advance(true)
	t.persist()
	return true
}

// advance moves to the next phase. completed marks whether the current
// phase ran to its end.
func (t *Timer) advance(completed bool) {
	next := PhaseFocus
	if t.state.Phase == PhaseFocus {
		if completed {
			t.state.SessionsCompleted++
		}
		if t.state.SessionsCompleted > 0 && t.state.SessionsCompleted%t.durations.LongBreakEvery == 0 {
			next = PhaseLongBreak
		} else {
			next = PhaseShortBreak
		}
	}
	t.state.Phase = next
	t.state.RemainingSeconds = int(t.phaseDuration(next) / time.Second)
	t.state.Running = false
}

func (t *Timer) phaseDuration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return t.durations.ShortBreak
	case PhaseLongBreak:
		return t.durations.LongBreak
	default:
		return t.durations.Focus
	}
}

// Remaining formats the countdown as MM:SS.
func (t *Timer) Remaining() string {
	return fmt.Sprintf("%02d:%02d", t.state.RemainingSeconds/60, t.state.RemainingSeconds%60)
}

func (t *Timer) persist() {
	if t.store == nil {
		return
	}
	_ = t.store.Set(domain.StoreKeyTimer, t.state)
}
