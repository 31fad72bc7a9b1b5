package activity

import "time"

// Type represents the type of gameplay event
type Type string

const (
	TypeSessionAccepted     Type = "session_accepted"
	TypeSessionRemoved      Type = "session_removed"
	TypeSessionCompleted    Type = "session_completed"
	TypeLandmarkFound       Type = "landmark_found"
	TypeLandmarkMissed      Type = "landmark_missed"
	TypeUniqueLandmarkFound Type = "unique_landmark_found"
	TypeLandmarkCreated     Type = "landmark_created"
	TypeChallengeExpired    Type = "challenge_expired"
	TypeLevelUp             Type = "level_up"
)

// Entry represents an event in the gameplay log
type Entry struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id,omitempty"`
	LandmarkID string    `json:"landmark_id,omitempty"`
	Type       Type      `json:"type"`
	Summary    string    `json:"summary"`
	Details    string    `json:"details,omitempty"` // JSON string
	CreatedAt  time.Time `json:"created_at"`
}
