package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
	"github.com/lmoretto/wanderlust/internal/domain/experience"
	"github.com/lmoretto/wanderlust/internal/domain/game"
)

// GameService defines game operations needed by MCP.
type GameService interface {
	Markers() []game.MarkerView
	AcceptSession(ctx context.Context, sessionID string) (game.SessionStatus, error)
	RemoveSession(ctx context.Context, sessionID string) error
	Status(sessionID string) (game.SessionStatus, error)
	Accepted() []game.SessionStatus
	ConfirmLandmark(ctx context.Context, sessionID string, index int, found bool) (game.ConfirmResult, error)
	CompleteSession(ctx context.Context, sessionID string, allLandmarksFound bool) (game.CompleteResult, error)
	CompleteUniqueLandmark(ctx context.Context, sessionID string, found bool) (game.CompleteResult, error)
	CreateLandmark(ctx context.Context, req game.CreateLandmarkRequest) (game.Landmark, experience.Result, error)
	SetResumeMarker(ctx context.Context, sessionID string, marker game.ResumeMarker) error
	Player() game.PlayerStatus
	CompletedSessions() []game.Session
	CustomLandmarks() []game.Landmark
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Game     GameService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services        Services
	ProximityMeters float64
	Logger          *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "wanderlust",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
