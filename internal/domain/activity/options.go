package activity

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	SessionID  string
	LandmarkID string
	Type       *Type
	Limit      int
	Offset     int
}
