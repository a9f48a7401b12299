// Package session runs a single focus session: the main countdown, the
// foreground/background grace rule for free-tier users, and the terminal
// outcome. A Controller and everything it owns live exactly as long as one
// session and must only be used from the event loop goroutine that drives its
// scheduler.
package session

import (
	"fmt"

	"github.com/ayoisaiah/focuswatch/internal/track"
)

// GraceWindowSeconds is how long a free-tier user may stay out of the
// foreground before the session fails.
const GraceWindowSeconds = 10

// Config is supplied once when a session begins and never changes.
type Config struct {
	TrackID         track.ID `json:"track_id"`
	DurationSeconds int      `json:"duration_seconds"`
	IsPremium       bool     `json:"is_premium"`
}

// Phase is the lifecycle stage of a session.
type Phase int

const (
	// Pending is the phase of a controller whose session has not begun.
	Pending Phase = iota
	Running
	GraceActive
	Completed
	Failed
	Skipped
)

var phaseNames = [...]string{
	Pending:     "pending",
	Running:     "running",
	GraceActive: "grace active",
	Completed:   "completed",
	Failed:      "failed",
	Skipped:     "skipped",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}

	return phaseNames[p]
}

// Active reports whether the countdown is running.
func (p Phase) Active() bool {
	return p == Running || p == GraceActive
}

// Terminal reports whether the phase is a final outcome.
func (p Phase) Terminal() bool {
	return p == Completed || p == Failed || p == Skipped
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}

	return errUnknownPhase.Fmt(string(b))
}

// State is a read-only projection of a session, published on every change.
type State struct {
	// GraceRemainingSeconds is non-nil only while Phase is GraceActive.
	GraceRemainingSeconds *int  `json:"grace_remaining_seconds,omitempty"`
	Phase                 Phase `json:"phase"`
	RemainingSeconds      int   `json:"remaining_seconds"`
}

// GraceRemaining returns the seconds left in the grace window, if one is
// running.
func (s State) GraceRemaining() (int, bool) {
	if s.GraceRemainingSeconds == nil {
		return 0, false
	}

	return *s.GraceRemainingSeconds, true
}

func (s State) clone() State {
	if s.GraceRemainingSeconds != nil {
		n := *s.GraceRemainingSeconds
		s.GraceRemainingSeconds = &n
	}

	return s
}

// Reason explains why a session ended.
type Reason string

const (
	ReasonDurationElapsed  Reason = "duration elapsed"
	ReasonGraceExpired     Reason = "grace period expired"
	ReasonSkipped          Reason = "skipped"
	ReasonTrackUnavailable Reason = "track unavailable"
	ReasonAbandoned        Reason = "session abandoned"
)

var messages = map[Reason]string{
	ReasonDurationElapsed:  "Well done! You stayed focused for the whole session.",
	ReasonGraceExpired:     fmt.Sprintf("Session failed: you were away for more than %d seconds.", GraceWindowSeconds),
	ReasonSkipped:          "Session skipped.",
	ReasonTrackUnavailable: "Session failed: the selected track could not be played.",
	ReasonAbandoned:        "Session failed: the session was abandoned.",
}

// Outcome is emitted exactly once when a session reaches a terminal phase.
type Outcome struct {
	SessionID        string `json:"session_id"`
	Reason           Reason `json:"reason"`
	Phase            Phase  `json:"phase"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Success          bool   `json:"success"`
}

// Message is a human-readable description of the outcome.
func (o Outcome) Message() string {
	if msg, ok := messages[o.Reason]; ok {
		return msg
	}

	return fmt.Sprintf("Session %s: %s.", o.Phase, o.Reason)
}
