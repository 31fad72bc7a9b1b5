package experience

// Experience award amounts.
const (
	BaseExpPerLevel        = 200
	ExpPerCompletedSession = 250
	ExpPerLandmark         = 50
	ExpPerLandmarkCreated  = 200
)

// Experience tracks a player's progression. Exp is the points accumulated
// within the current level and always stays below Required(Level).
type Experience struct {
	Exp   int `json:"currentExp"`
	Level int `json:"currentLevel"`
}

// New returns a fresh level-1 experience record.
func New() Experience {
	return Experience{Exp: 0, Level: 1}
}

// Result describes the outcome of an experience gain.
type Result struct {
	Level               int     `json:"level"`
	Exp                 int     `json:"exp"`
	DidLevelUp          bool    `json:"did_level_up"`
	ProgressToNextLevel float64 `json:"progress_to_next_level"`
}

// Required returns the experience needed to advance past the given level.
func Required(level int) int {
	return BaseExpPerLevel * level
}

// Add applies gained experience to cur, carrying overflow into level
// increments. A single large gain may advance several levels. Negative
// gains are rejected before any mutation.
func Add(cur Experience, gained int) (Experience, Result, error) {
	if gained < 0 {
		return cur, Result{}, ErrNegativeGain
	}
	if cur.Level < 1 {
		return cur, Result{}, ErrInvalidLevel
	}

	oldLevel := cur.Level
	cur.Exp += gained
	for cur.Exp >= Required(cur.Level) {
		cur.Exp -= Required(cur.Level)
		cur.Level++
	}

	res := Result{
		Level:               cur.Level,
		Exp:                 cur.Exp,
		DidLevelUp:          cur.Level > oldLevel,
		ProgressToNextLevel: float64(cur.Exp) / float64(Required(cur.Level)),
	}
	return cur, res, nil
}
