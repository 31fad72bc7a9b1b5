package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
	"github.com/lmoretto/wanderlust/internal/domain/experience"
	"github.com/lmoretto/wanderlust/internal/domain/game"
	"github.com/lmoretto/wanderlust/internal/domain/geo"
)

// registerTools wires every gameplay tool into the server.
func registerTools(server *sdkmcp.Server, cfg Config) {
	svc := cfg.Services
	threshold := cfg.ProximityMeters
	if threshold <= 0 {
		threshold = geo.DefaultProximityMeters
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_sessions",
		Description: "List all game sessions as map markers with their availability",
	}, listSessionsHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "accept_session",
		Description: "Accept an available game session and start its challenge countdown",
	}, acceptSessionHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_session",
		Description: "Abandon an accepted game session, discarding its progress",
	}, removeSessionHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "session_status",
		Description: "Get the current progress and remaining challenge time of an accepted session",
	}, sessionStatusHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "check_proximity",
		Description: "Check whether the player is close enough to a session landmark to discover it",
	}, checkProximityHandler(svc.Game, threshold))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "confirm_landmark",
		Description: "Record whether the player found the current landmark of a session",
	}, confirmLandmarkHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_session",
		Description: "Finish an accepted session after all its landmarks were decided",
	}, completeSessionHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_unique_landmark",
		Description: "Record the unique landmark outcome and finish the session",
	}, completeUniqueLandmarkHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_landmark",
		Description: "Create a player-authored landmark and earn creation experience",
	}, createLandmarkHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "player_status",
		Description: "Get the player's experience, level, and completed sessions",
	}, playerStatusHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_resume_marker",
		Description: "Record which popup the player should be returned to on restart",
	}, setResumeMarkerHandler(svc.Game))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_activity",
		Description: "List recent gameplay events, optionally filtered by session, landmark, or type",
	}, recentActivityHandler(svc.Activity))
}

type listSessionsInput struct{}

type listSessionsResult struct {
	Sessions []game.MarkerView `json:"sessions"`
}

func listSessionsHandler(svc GameService) sdkmcp.ToolHandlerFor[listSessionsInput, listSessionsResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listSessionsInput) (*sdkmcp.CallToolResult, listSessionsResult, error) {
		return nil, listSessionsResult{Sessions: svc.Markers()}, nil
	}
}

type sessionIDInput struct {
	SessionID string `json:"session_id" jsonschema:"the game session identifier"`
}

func acceptSessionHandler(svc GameService) sdkmcp.ToolHandlerFor[sessionIDInput, game.SessionStatus] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionIDInput) (*sdkmcp.CallToolResult, game.SessionStatus, error) {
		status, err := svc.AcceptSession(ctx, input.SessionID)
		if err != nil {
			return nil, game.SessionStatus{}, MapError(err)
		}
		return nil, status, nil
	}
}

type removeSessionResult struct {
	Removed bool `json:"removed"`
}

func removeSessionHandler(svc GameService) sdkmcp.ToolHandlerFor[sessionIDInput, removeSessionResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionIDInput) (*sdkmcp.CallToolResult, removeSessionResult, error) {
		if err := svc.RemoveSession(ctx, input.SessionID); err != nil {
			return nil, removeSessionResult{}, MapError(err)
		}
		return nil, removeSessionResult{Removed: true}, nil
	}
}

func sessionStatusHandler(svc GameService) sdkmcp.ToolHandlerFor[sessionIDInput, game.SessionStatus] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionIDInput) (*sdkmcp.CallToolResult, game.SessionStatus, error) {
		status, err := svc.Status(input.SessionID)
		if err != nil {
			return nil, game.SessionStatus{}, MapError(err)
		}
		return nil, status, nil
	}
}

type checkProximityInput struct {
	SessionID     string  `json:"session_id" jsonschema:"the game session identifier"`
	Latitude      float64 `json:"latitude" jsonschema:"player latitude in degrees"`
	Longitude     float64 `json:"longitude" jsonschema:"player longitude in degrees"`
	LandmarkIndex *int    `json:"landmark_index,omitempty" jsonschema:"landmark to check; defaults to the session's current landmark"`
	Unique        bool    `json:"unique,omitempty" jsonschema:"check against the unique landmark instead"`
}

type checkProximityResult struct {
	LandmarkID      string  `json:"landmark_id"`
	DistanceMeters  float64 `json:"distance_meters"`
	ThresholdMeters float64 `json:"threshold_meters"`
	WithinRange     bool    `json:"within_range"`
}

func checkProximityHandler(svc GameService, threshold float64) sdkmcp.ToolHandlerFor[checkProximityInput, checkProximityResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input checkProximityInput) (*sdkmcp.CallToolResult, checkProximityResult, error) {
		user := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
		if !user.Valid() {
			return nil, checkProximityResult{}, &APIError{Code: "INVALID_ARGUMENT", Message: "player coordinate must be finite"}
		}

		status, err := svc.Status(input.SessionID)
		if err != nil {
			return nil, checkProximityResult{}, MapError(err)
		}

		var target game.Landmark
		switch {
		case input.Unique:
			target = status.Session.UniqueLandmark
		case input.LandmarkIndex != nil:
			idx := *input.LandmarkIndex
			if idx < 0 || idx >= len(status.Session.Landmarks) {
				return nil, checkProximityResult{}, &APIError{Code: "INVALID_ARGUMENT", Message: "landmark_index out of range"}
			}
			target = status.Session.Landmarks[idx]
		default:
			idx := status.Progress.CurrentLandmark
			if idx >= len(status.Session.Landmarks) {
				return nil, checkProximityResult{}, &APIError{Code: "INVALID_STATE", Message: "all landmarks of this session are already decided", RecoveryHint: "Use unique=true or pass landmark_index"}
			}
			target = status.Session.Landmarks[idx]
		}

		distance := geo.DistanceMeters(user, target.Coordinate)
		return nil, checkProximityResult{
			LandmarkID:      target.ID,
			DistanceMeters:  distance,
			ThresholdMeters: threshold,
			WithinRange:     geo.WithinRange(user, target.Coordinate, threshold),
		}, nil
	}
}

type confirmLandmarkInput struct {
	SessionID     string `json:"session_id" jsonschema:"the game session identifier"`
	LandmarkIndex int    `json:"landmark_index" jsonschema:"index of the landmark being decided"`
	Found         bool   `json:"found" jsonschema:"true when the player located the landmark"`
}

func confirmLandmarkHandler(svc GameService) sdkmcp.ToolHandlerFor[confirmLandmarkInput, game.ConfirmResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input confirmLandmarkInput) (*sdkmcp.CallToolResult, game.ConfirmResult, error) {
		result, err := svc.ConfirmLandmark(ctx, input.SessionID, input.LandmarkIndex, input.Found)
		if err != nil {
			return nil, game.ConfirmResult{}, MapError(err)
		}
		return nil, result, nil
	}
}

type completeSessionInput struct {
	SessionID         string `json:"session_id" jsonschema:"the game session identifier"`
	AllLandmarksFound bool   `json:"all_landmarks_found" jsonschema:"whether every landmark of the session was found"`
}

func completeSessionHandler(svc GameService) sdkmcp.ToolHandlerFor[completeSessionInput, game.CompleteResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input completeSessionInput) (*sdkmcp.CallToolResult, game.CompleteResult, error) {
		result, err := svc.CompleteSession(ctx, input.SessionID, input.AllLandmarksFound)
		if err != nil {
			return nil, game.CompleteResult{}, MapError(err)
		}
		return nil, result, nil
	}
}

type completeUniqueLandmarkInput struct {
	SessionID string `json:"session_id" jsonschema:"the game session identifier"`
	Found     bool   `json:"found" jsonschema:"true when the player located the unique landmark"`
}

func completeUniqueLandmarkHandler(svc GameService) sdkmcp.ToolHandlerFor[completeUniqueLandmarkInput, game.CompleteResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input completeUniqueLandmarkInput) (*sdkmcp.CallToolResult, game.CompleteResult, error) {
		result, err := svc.CompleteUniqueLandmark(ctx, input.SessionID, input.Found)
		if err != nil {
			return nil, game.CompleteResult{}, MapError(err)
		}
		return nil, result, nil
	}
}

type createLandmarkInput struct {
	Name      string  `json:"name" jsonschema:"landmark name, at least 4 characters"`
	Latitude  float64 `json:"latitude" jsonschema:"landmark latitude in degrees"`
	Longitude float64 `json:"longitude" jsonschema:"landmark longitude in degrees"`
	Picture   string  `json:"picture" jsonschema:"picture reference for the landmark"`
	Hint      string  `json:"hint,omitempty" jsonschema:"optional discovery hint"`
	ExtraHint string  `json:"extra_hint,omitempty" jsonschema:"optional second-level hint"`
}

type createLandmarkResult struct {
	Landmark   game.Landmark     `json:"landmark"`
	AwardedExp int               `json:"awarded_exp"`
	Experience experience.Result `json:"experience"`
}

func createLandmarkHandler(svc GameService) sdkmcp.ToolHandlerFor[createLandmarkInput, createLandmarkResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input createLandmarkInput) (*sdkmcp.CallToolResult, createLandmarkResult, error) {
		landmark, result, err := svc.CreateLandmark(ctx, game.CreateLandmarkRequest{
			Name:       input.Name,
			Coordinate: geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude},
			Picture:    input.Picture,
			Hint:       input.Hint,
			ExtraHint:  input.ExtraHint,
		})
		if err != nil {
			return nil, createLandmarkResult{}, MapError(err)
		}
		return nil, createLandmarkResult{
			Landmark:   landmark,
			AwardedExp: experience.ExpPerLandmarkCreated,
			Experience: result,
		}, nil
	}
}

type playerStatusInput struct{}

type playerStatusResult struct {
	Player            game.PlayerStatus `json:"player"`
	CompletedSessions []game.Session    `json:"completed_sessions"`
	CustomLandmarks   []game.Landmark   `json:"custom_landmarks"`
}

func playerStatusHandler(svc GameService) sdkmcp.ToolHandlerFor[playerStatusInput, playerStatusResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ playerStatusInput) (*sdkmcp.CallToolResult, playerStatusResult, error) {
		return nil, playerStatusResult{
			Player:            svc.Player(),
			CompletedSessions: svc.CompletedSessions(),
			CustomLandmarks:   svc.CustomLandmarks(),
		}, nil
	}
}

type setResumeMarkerInput struct {
	SessionID string `json:"session_id" jsonschema:"the game session identifier"`
	Marker    string `json:"marker" jsonschema:"resume marker: landmark_popup, confirmation_landmark_popup, or empty to clear"`
}

type setResumeMarkerResult struct {
	Marker string `json:"marker"`
}

func setResumeMarkerHandler(svc GameService) sdkmcp.ToolHandlerFor[setResumeMarkerInput, setResumeMarkerResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input setResumeMarkerInput) (*sdkmcp.CallToolResult, setResumeMarkerResult, error) {
		marker := game.ResumeMarker(input.Marker)
		if err := svc.SetResumeMarker(ctx, input.SessionID, marker); err != nil {
			return nil, setResumeMarkerResult{}, MapError(err)
		}
		return nil, setResumeMarkerResult{Marker: input.Marker}, nil
	}
}

type recentActivityInput struct {
	SessionID  string `json:"session_id,omitempty" jsonschema:"filter by game session"`
	LandmarkID string `json:"landmark_id,omitempty" jsonschema:"filter by landmark"`
	Type       string `json:"type,omitempty" jsonschema:"filter by event type"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of events"`
	Offset     int    `json:"offset,omitempty" jsonschema:"offset for pagination"`
}

type recentActivityResult struct {
	Entries []activity.Entry `json:"entries"`
}

func recentActivityHandler(svc ActivityService) sdkmcp.ToolHandlerFor[recentActivityInput, recentActivityResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input recentActivityInput) (*sdkmcp.CallToolResult, recentActivityResult, error) {
		opts := activity.ListOptions{
			SessionID:  input.SessionID,
			LandmarkID: input.LandmarkID,
			Limit:      input.Limit,
			Offset:     input.Offset,
		}
		if input.Type != "" {
			typ := activity.Type(input.Type)
			opts.Type = &typ
		}
		entries, err := svc.Recent(ctx, opts)
		if err != nil {
			return nil, recentActivityResult{}, MapError(err)
		}
		return nil, recentActivityResult{Entries: entries}, nil
	}
}
