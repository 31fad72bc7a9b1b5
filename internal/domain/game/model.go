package game

import (
	"time"

	"github.com/lmoretto/wanderlust/internal/domain/geo"
)

// SessionState represents the lifecycle state of a game session.
type SessionState string

const (
	StateAvailable  SessionState = "available"
	StateAccepted   SessionState = "accepted"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
)

// ResumeMarker identifies which UI step to resume into after a restart.
type ResumeMarker string

const (
	ResumeNone              ResumeMarker = ""
	ResumeLandmarkPopup     ResumeMarker = "landmark_popup"
	ResumeConfirmationPopup ResumeMarker = "confirmation_landmark_popup"
)

// Valid reports whether the marker is one of the known tags.
func (m ResumeMarker) Valid() bool {
	switch m {
	case ResumeNone, ResumeLandmarkPopup, ResumeConfirmationPopup:
		return true
	}
	return false
}

// Landmark is a single discoverable point of interest with a riddle-style
// hint. Found is owned by the manager and set only on a confirmed discovery.
type Landmark struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Coordinate geo.Coordinate `json:"coordinate" yaml:"coordinate"`
	Picture    string         `json:"picture,omitempty" yaml:"picture,omitempty"`
	Hint       string         `json:"hint" yaml:"hint"`
	ExtraHint  string         `json:"extraHint" yaml:"extraHint"`
	Found      bool           `json:"found" yaml:"-"`
}

// Session bundles an ordered landmark sequence plus one unique landmark,
// anchored to a map coordinate the player must reach. The landmark order is
// the mandatory discovery order.
type Session struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Coordinate        geo.Coordinate `json:"coordinate"`
	ChallengeMinutes  int            `json:"extrachallengeTime"`
	Landmarks         []Landmark     `json:"landmarks"`
	UniqueLandmark    Landmark       `json:"uniqueLandmark"`
	Completed         bool           `json:"completed"`
	AllLandmarksFound bool           `json:"allLandmarksFound"`
	Picture           string         `json:"picture,omitempty"`
}

// Progress tracks per-session discovery state while a session is accepted.
// FoundStatus entries are nil until the player has decided either way.
type Progress struct {
	CurrentLandmark int          `json:"currentLandmarkIndex"`
	FoundStatus     []*bool      `json:"landmarksFoundStatus"`
	UniqueEligible  bool         `json:"uniqueEligible"`
	UniqueFound     *bool        `json:"uniqueFound,omitempty"`
	ResumeMarker    ResumeMarker `json:"resumeMarker,omitempty"`
}

// Countdown is the persisted challenge-timer snapshot. LastUpdatedMs is a
// wall-clock epoch-milliseconds timestamp so elapsed time during app
// suspension can be reconciled on resume.
type Countdown struct {
	RemainingSeconds int   `json:"timeLeft"`
	LastUpdatedMs    int64 `json:"lastUpdated"`
}

// Reconcile returns the remaining seconds after subtracting wall-clock time
// elapsed since the snapshot was taken, floored at zero.
func (c Countdown) Reconcile(now time.Time) int {
	elapsed := int(now.UnixMilli()-c.LastUpdatedMs) / 1000
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := c.RemainingSeconds - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// SessionStatus is the manager's view of one accepted session, consumed by
// the UI layer.
type SessionStatus struct {
	Session          Session      `json:"session"`
	State            SessionState `json:"state"`
	Progress         Progress     `json:"progress"`
	RemainingSeconds int          `json:"remainingSeconds"`
}

// MarkerView describes how a map marker should render.
type MarkerView struct {
	Session   Session      `json:"session"`
	State     SessionState `json:"state"`
	Disabled  bool         `json:"disabled"`
	Completed bool         `json:"completed"`
}
