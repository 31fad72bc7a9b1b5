package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lmoretto/wanderlust/internal/domain/activity"
	"github.com/lmoretto/wanderlust/internal/domain/experience"
	"github.com/lmoretto/wanderlust/internal/domain/geo"
	"github.com/lmoretto/wanderlust/internal/repository"
)

// Persisted keys. One blob for experience, one for the accepted/completed
// snapshot, one countdown blob per session id.
const (
	experienceKey  = "experience"
	gameStateKey   = "gameState"
	timerKeyPrefix = "gameSessionTimer_"
)

func timerKey(sessionID string) string {
	return timerKeyPrefix + sessionID
}

// minLandmarkNameLen matches the authoring form's name validation.
const minLandmarkNameLen = 4

// sessionRecord is the manager's working state for one accepted session.
type sessionRecord struct {
	session   Session
	state     SessionState
	progress  Progress
	countdown Countdown
}

// Manager owns the set of accepted and completed game sessions and drives
// every permitted state transition. All operations are synchronous; a single
// mutex serializes the one logical timeline of UI events and timer ticks.
// Persistence is best-effort: a failed write is logged and superseded by the
// next natural write, in-memory state stays authoritative.
type Manager struct {
	mu     sync.Mutex
	store  StateStore
	source SessionSource
	events ActivityLog
	logger *slog.Logger
	now    func() time.Time

	placed    bool
	available []Session
	accepted  map[string]*sessionRecord
	order     []string
	completed []Session
	done      map[string]bool
	custom    []Landmark
	player    experience.Experience
}

// NewManager creates a session lifecycle manager. The events log may be nil.
func NewManager(store StateStore, source SessionSource, events ActivityLog, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		store:    store,
		source:   source,
		events:   events,
		logger:   logger,
		now:      time.Now,
		accepted: make(map[string]*sessionRecord),
		done:     make(map[string]bool),
		player:   experience.New(),
	}
}

// savedState is the persisted gameState blob.
type savedState struct {
	Accepted        []Session               `json:"acceptedGameSessions"`
	Completed       []Session               `json:"completedGameSessions"`
	Progress        map[string]Progress     `json:"progress"`
	States          map[string]SessionState `json:"states"`
	CustomLandmarks []Landmark              `json:"customLandmarks,omitempty"`
}

// Restore loads experience, the session snapshot, and per-session countdowns
// from the store, reconciling countdown wall-clock drift accumulated while
// the app was suspended. Missing keys mean a fresh start.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if data, err := m.store.Get(ctx, experienceKey); err == nil {
		var exp experience.Experience
		if err := json.Unmarshal(data, &exp); err != nil {
			m.logger.Warn("discarding corrupt experience blob", "error", err)
		} else if exp.Level >= 1 {
			m.player = exp
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		m.logger.Warn("loading experience", "error", err)
	}

	data, err := m.store.Get(ctx, gameStateKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			m.logger.Warn("loading game state", "error", err)
		}
		return nil
	}

	var saved savedState
	if err := json.Unmarshal(data, &saved); err != nil {
		m.logger.Warn("discarding corrupt game state blob", "error", err)
		return nil
	}

	m.completed = saved.Completed
	m.custom = saved.CustomLandmarks
	for _, sess := range saved.Completed {
		m.done[sess.ID] = true
	}

	now := m.now()
	for _, sess := range saved.Accepted {
		rec := &sessionRecord{
			session:  sess,
			state:    StateAccepted,
			progress: Progress{FoundStatus: make([]*bool, len(sess.Landmarks))},
		}
		if prog, ok := saved.Progress[sess.ID]; ok {
			rec.progress = prog
		}
		if state, ok := saved.States[sess.ID]; ok && (state == StateAccepted || state == StateInProgress) {
			rec.state = state
		}
		rec.countdown = m.restoreCountdown(ctx, sess.ID, now)
		m.accepted[sess.ID] = rec
		m.order = append(m.order, sess.ID)
	}
	return nil
}

func (m *Manager) restoreCountdown(ctx context.Context, sessionID string, now time.Time) Countdown {
	data, err := m.store.Get(ctx, timerKey(sessionID))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			m.logger.Warn("loading countdown", "session", sessionID, "error", err)
		}
		return Countdown{LastUpdatedMs: now.UnixMilli()}
	}

	var saved Countdown
	if err := json.Unmarshal(data, &saved); err != nil {
		m.logger.Warn("discarding corrupt countdown blob", "session", sessionID, "error", err)
		return Countdown{LastUpdatedMs: now.UnixMilli()}
	}

	cd := Countdown{RemainingSeconds: saved.Reconcile(now), LastUpdatedMs: now.UnixMilli()}
	if cd.RemainingSeconds == 0 {
		m.deleteCountdown(ctx, sessionID)
	} else {
		m.persistCountdown(ctx, sessionID, cd)
	}
	return cd
}

// PlaceSessions generates the session catalog around the player's starting
// position. Placement happens once; later calls are no-ops so a session
// accepted mid-walk keeps its coordinates.
func (m *Manager) PlaceSessions(ctx context.Context, origin geo.Coordinate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !origin.Valid() {
		return fmt.Errorf("%w: non-finite origin coordinate", ErrInvalidArgument)
	}
	if m.placed {
		return nil
	}

	sessions, err := m.source.Place(origin)
	if err != nil {
		return fmt.Errorf("placing sessions: %w", err)
	}
	m.available = sessions
	m.placed = true
	return nil
}

// Markers returns the map-marker view of every placed session.
func (m *Manager) Markers() []MarkerView {
	m.mu.Lock()
	defer m.mu.Unlock()

	markers := make([]MarkerView, 0, len(m.available))
	for _, sess := range m.available {
		view := MarkerView{Session: sess, State: StateAvailable}
		if rec, ok := m.accepted[sess.ID]; ok {
			view.Session = rec.session
			view.State = rec.state
			view.Disabled = true
		} else if m.done[sess.ID] {
			if done, ok := m.completedSession(sess.ID); ok {
				view.Session = done
			}
			view.State = StateCompleted
			view.Completed = true
		}
		markers = append(markers, view)
	}
	return markers
}

// AcceptSession moves an available session into the accepted set, disables
// its marker, and starts its challenge budget.
func (m *Manager) AcceptSession(ctx context.Context, sessionID string) (SessionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accepted[sessionID]; ok {
		return SessionStatus{}, fmt.Errorf("%w: session %s already accepted", ErrInvalidState, sessionID)
	}
	if m.done[sessionID] {
		return SessionStatus{}, fmt.Errorf("%w: session %s already completed", ErrInvalidState, sessionID)
	}

	sess, ok := m.availableSession(sessionID)
	if !ok {
		return SessionStatus{}, ErrSessionNotFound
	}

	rec := &sessionRecord{
		session: cloneSession(sess),
		state:   StateAccepted,
		progress: Progress{
			CurrentLandmark: 0,
			FoundStatus:     make([]*bool, len(sess.Landmarks)),
		},
		countdown: Countdown{
			RemainingSeconds: sess.ChallengeMinutes * 60,
			LastUpdatedMs:    m.now().UnixMilli(),
		},
	}
	m.accepted[sessionID] = rec
	m.order = append(m.order, sessionID)

	m.persistState(ctx)
	m.persistCountdown(ctx, sessionID, rec.countdown)
	m.record(ctx, activity.TypeSessionAccepted, sessionID, "", fmt.Sprintf("accepted session %q", sess.Name))

	return m.status(rec), nil
}

// ConfirmResult describes the outcome of a landmark confirmation.
type ConfirmResult struct {
	LandmarkID        string            `json:"landmark_id"`
	Found             bool              `json:"found"`
	CurrentLandmark   int               `json:"current_landmark"`
	LastLandmark      bool              `json:"last_landmark"`
	AllLandmarksFound bool              `json:"all_landmarks_found"`
	UniqueEligible    bool              `json:"unique_eligible"`
	AwardedExp        int               `json:"awarded_exp"`
	Experience        experience.Result `json:"experience"`
}

// ConfirmLandmark records the player's decision for the landmark at the
// given index. Discovery is strictly ordered and each landmark is decided
// once. The proximity check belongs to the caller; the manager trusts the
// reported outcome. Confirming the last landmark evaluates session
// completion and unlocks the unique landmark when the challenge countdown
// has not expired.
func (m *Manager) ConfirmLandmark(ctx context.Context, sessionID string, index int, found bool) (ConfirmResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.activeRecord(sessionID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if index < 0 || index >= len(rec.session.Landmarks) {
		return ConfirmResult{}, fmt.Errorf("%w: landmark index %d out of range", ErrInvalidArgument, index)
	}
	if index != rec.progress.CurrentLandmark {
		return ConfirmResult{}, fmt.Errorf("%w: landmark %d is not the current landmark", ErrInvalidState, index)
	}
	if rec.progress.FoundStatus[index] != nil {
		return ConfirmResult{}, fmt.Errorf("%w: landmark %d already decided", ErrInvalidState, index)
	}

	decision := found
	rec.progress.FoundStatus[index] = &decision
	rec.state = StateInProgress

	landmark := &rec.session.Landmarks[index]
	res := ConfirmResult{
		LandmarkID:   landmark.ID,
		Found:        found,
		LastLandmark: index == len(rec.session.Landmarks)-1,
	}

	if found {
		landmark.Found = true
		res.AwardedExp = experience.ExpPerLandmark
		res.Experience = m.award(ctx, experience.ExpPerLandmark, sessionID)
		m.record(ctx, activity.TypeLandmarkFound, sessionID, landmark.ID, fmt.Sprintf("found landmark %q", landmark.Name))
	} else {
		m.record(ctx, activity.TypeLandmarkMissed, sessionID, landmark.ID, fmt.Sprintf("missed landmark %q", landmark.Name))
	}

	if res.LastLandmark {
		allFound := true
		for _, status := range rec.progress.FoundStatus {
			if status == nil || !*status {
				allFound = false
				break
			}
		}
		rec.session.AllLandmarksFound = allFound
		res.AllLandmarksFound = allFound
		// Eligibility is decided at this moment and never regained.
		rec.progress.UniqueEligible = allFound && rec.countdown.Reconcile(m.now()) > 0
		res.UniqueEligible = rec.progress.UniqueEligible
	} else {
		rec.progress.CurrentLandmark++
	}
	res.CurrentLandmark = rec.progress.CurrentLandmark

	m.persistState(ctx)
	return res, nil
}

// CompleteResult describes a session completion.
type CompleteResult struct {
	Session           Session           `json:"session"`
	AllLandmarksFound bool              `json:"all_landmarks_found"`
	AwardedExp        int               `json:"awarded_exp"`
	AlreadyCompleted  bool              `json:"already_completed"`
	Experience        experience.Result `json:"experience"`
}

// CompleteSession marks a session completed and moves it to the completed
// set. The completion award is paid exactly once per session: a repeated
// call for an already-completed id is a no-op reporting AlreadyCompleted.
func (m *Manager) CompleteSession(ctx context.Context, sessionID string, allLandmarksFound bool) (CompleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done[sessionID] {
		sess, _ := m.completedSession(sessionID)
		return CompleteResult{
			Session:           sess,
			AllLandmarksFound: sess.AllLandmarksFound,
			AlreadyCompleted:  true,
		}, nil
	}

	rec, err := m.activeRecord(sessionID)
	if err != nil {
		return CompleteResult{}, err
	}
	return m.finalize(ctx, rec, allLandmarksFound), nil
}

// CompleteUniqueLandmark terminates the unique-landmark flow. Both outcomes
// finalize the session; only eligibility gates the call.
func (m *Manager) CompleteUniqueLandmark(ctx context.Context, sessionID string, found bool) (CompleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.activeRecord(sessionID)
	if err != nil {
		return CompleteResult{}, err
	}
	if !rec.progress.UniqueEligible || !rec.session.AllLandmarksFound {
		return CompleteResult{}, fmt.Errorf("%w: unique landmark not unlocked for session %s", ErrInvalidState, sessionID)
	}

	decision := found
	rec.progress.UniqueFound = &decision
	if found {
		rec.session.UniqueLandmark.Found = true
		m.record(ctx, activity.TypeUniqueLandmarkFound, sessionID, rec.session.UniqueLandmark.ID,
			fmt.Sprintf("found unique landmark %q", rec.session.UniqueLandmark.Name))
	}

	return m.finalize(ctx, rec, rec.session.AllLandmarksFound), nil
}

func (m *Manager) finalize(ctx context.Context, rec *sessionRecord, allLandmarksFound bool) CompleteResult {
	sessionID := rec.session.ID
	rec.session.Completed = true
	rec.session.AllLandmarksFound = allLandmarksFound

	res := CompleteResult{
		Session:           rec.session,
		AllLandmarksFound: allLandmarksFound,
	}
	if allLandmarksFound {
		res.AwardedExp = experience.ExpPerCompletedSession
		res.Experience = m.award(ctx, experience.ExpPerCompletedSession, sessionID)
	}

	m.completed = append(m.completed, rec.session)
	m.done[sessionID] = true
	delete(m.accepted, sessionID)
	m.dropFromOrder(sessionID)
	m.deleteCountdown(ctx, sessionID)

	m.persistState(ctx)
	m.record(ctx, activity.TypeSessionCompleted, sessionID, "",
		fmt.Sprintf("completed session %q (all landmarks: %t)", rec.session.Name, allLandmarksFound))
	return res
}

// RemoveSession abandons an accepted session: progress and countdown are
// discarded, the marker re-enables, and no experience is awarded.
func (m *Manager) RemoveSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.activeRecord(sessionID)
	if err != nil {
		return err
	}

	delete(m.accepted, sessionID)
	m.dropFromOrder(sessionID)
	m.deleteCountdown(ctx, sessionID)

	m.persistState(ctx)
	m.record(ctx, activity.TypeSessionRemoved, sessionID, "", fmt.Sprintf("abandoned session %q", rec.session.Name))
	return nil
}

// Tick advances a session's challenge countdown by one second and persists
// the snapshot. Ticking an expired countdown is a no-op; expiry permanently
// forfeits unique-landmark eligibility for the session's remaining life.
func (m *Manager) Tick(ctx context.Context, sessionID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.activeRecord(sessionID)
	if err != nil {
		return 0, err
	}
	return m.tick(ctx, rec), nil
}

// TickAccepted advances every running countdown by one second. Driven by
// the host's 1 Hz scheduler.
func (m *Manager) TickAccepted(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.order {
		if rec, ok := m.accepted[id]; ok {
			m.tick(ctx, rec)
		}
	}
}

func (m *Manager) tick(ctx context.Context, rec *sessionRecord) int {
	if rec.countdown.RemainingSeconds <= 0 {
		return 0
	}

	rec.countdown.RemainingSeconds--
	rec.countdown.LastUpdatedMs = m.now().UnixMilli()

	if rec.countdown.RemainingSeconds == 0 {
		m.deleteCountdown(ctx, rec.session.ID)
		m.record(ctx, activity.TypeChallengeExpired, rec.session.ID, "",
			fmt.Sprintf("challenge time expired for session %q", rec.session.Name))
	} else {
		m.persistCountdown(ctx, rec.session.ID, rec.countdown)
	}
	return rec.countdown.RemainingSeconds
}

// SetResumeMarker persists which UI step to resume into for a session.
func (m *Manager) SetResumeMarker(ctx context.Context, sessionID string, marker ResumeMarker) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !marker.Valid() {
		return fmt.Errorf("%w: unknown resume marker %q", ErrInvalidArgument, marker)
	}
	rec, err := m.activeRecord(sessionID)
	if err != nil {
		return err
	}

	rec.progress.ResumeMarker = marker
	m.persistState(ctx)
	return nil
}

// CreateLandmarkRequest carries the landmark authoring form.
type CreateLandmarkRequest struct {
	Name       string         `json:"name"`
	Coordinate geo.Coordinate `json:"coordinate"`
	Picture    string         `json:"picture"`
	Hint       string         `json:"hint,omitempty"`
	ExtraHint  string         `json:"extraHint,omitempty"`
}

// CreateLandmark adds a player-authored landmark and awards creation
// experience. Name, position, and picture are required by the authoring
// flow; hints fall back to defaults.
func (m *Manager) CreateLandmark(ctx context.Context, req CreateLandmarkRequest) (Landmark, experience.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	if len(name) < minLandmarkNameLen {
		return Landmark{}, experience.Result{}, fmt.Errorf("%w: landmark name needs at least %d characters", ErrInvalidArgument, minLandmarkNameLen)
	}
	if !req.Coordinate.Valid() {
		return Landmark{}, experience.Result{}, fmt.Errorf("%w: non-finite landmark coordinate", ErrInvalidArgument)
	}
	if req.Picture == "" {
		return Landmark{}, experience.Result{}, fmt.Errorf("%w: landmark picture is required", ErrInvalidArgument)
	}

	hint := req.Hint
	if hint == "" {
		hint = "Default hint"
	}
	extraHint := req.ExtraHint
	if extraHint == "" {
		extraHint = "Default extra hint"
	}

	landmark := Landmark{
		ID:         uuid.NewString(),
		Name:       name,
		Coordinate: req.Coordinate,
		Picture:    req.Picture,
		Hint:       hint,
		ExtraHint:  extraHint,
	}
	m.custom = append(m.custom, landmark)

	res := m.award(ctx, experience.ExpPerLandmarkCreated, "")
	m.persistState(ctx)
	m.record(ctx, activity.TypeLandmarkCreated, "", landmark.ID, fmt.Sprintf("created landmark %q", landmark.Name))
	return landmark, res, nil
}

// PlayerStatus is the ledger view consumed by the UI's progress bar.
type PlayerStatus struct {
	Experience          experience.Experience `json:"experience"`
	ProgressToNextLevel float64               `json:"progress_to_next_level"`
}

// Player returns the current experience standing.
func (m *Manager) Player() PlayerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return PlayerStatus{
		Experience:          m.player,
		ProgressToNextLevel: float64(m.player.Exp) / float64(experience.Required(m.player.Level)),
	}
}

// Status returns the lifecycle view of one session.
func (m *Manager) Status(sessionID string) (SessionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.accepted[sessionID]; ok {
		return m.status(rec), nil
	}
	if m.done[sessionID] {
		sess, _ := m.completedSession(sessionID)
		return SessionStatus{Session: sess, State: StateCompleted}, nil
	}
	if sess, ok := m.availableSession(sessionID); ok {
		return SessionStatus{Session: sess, State: StateAvailable}, nil
	}
	return SessionStatus{}, ErrSessionNotFound
}

// Accepted returns every accepted session in acceptance order.
func (m *Manager) Accepted() []SessionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	statuses := make([]SessionStatus, 0, len(m.order))
	for _, id := range m.order {
		if rec, ok := m.accepted[id]; ok {
			statuses = append(statuses, m.status(rec))
		}
	}
	return statuses
}

// CompletedSessions returns the completed-session set.
func (m *Manager) CompletedSessions() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Session, len(m.completed))
	copy(out, m.completed)
	return out
}

// CustomLandmarks returns player-authored landmarks.
func (m *Manager) CustomLandmarks() []Landmark {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Landmark, len(m.custom))
	copy(out, m.custom)
	return out
}

func (m *Manager) status(rec *sessionRecord) SessionStatus {
	return SessionStatus{
		Session:          cloneSession(rec.session),
		State:            rec.state,
		Progress:         cloneProgress(rec.progress),
		RemainingSeconds: rec.countdown.Reconcile(m.now()),
	}
}

// activeRecord resolves a session that must be Accepted or InProgress.
func (m *Manager) activeRecord(sessionID string) (*sessionRecord, error) {
	if rec, ok := m.accepted[sessionID]; ok {
		return rec, nil
	}
	if m.done[sessionID] {
		return nil, fmt.Errorf("%w: session %s already completed", ErrInvalidState, sessionID)
	}
	if _, ok := m.availableSession(sessionID); ok {
		return nil, fmt.Errorf("%w: session %s not accepted", ErrInvalidState, sessionID)
	}
	return nil, ErrSessionNotFound
}

func (m *Manager) availableSession(sessionID string) (Session, bool) {
	for _, sess := range m.available {
		if sess.ID == sessionID {
			return sess, true
		}
	}
	return Session{}, false
}

func (m *Manager) completedSession(sessionID string) (Session, bool) {
	for _, sess := range m.completed {
		if sess.ID == sessionID {
			return sess, true
		}
	}
	return Session{}, false
}

func (m *Manager) dropFromOrder(sessionID string) {
	for i, id := range m.order {
		if id == sessionID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

func (m *Manager) award(ctx context.Context, gained int, sessionID string) experience.Result {
	player, res, err := experience.Add(m.player, gained)
	if err != nil {
		// Award constants are positive; reaching this is a programming error.
		m.logger.Error("experience award rejected", "gained", gained, "error", err)
		return experience.Result{Level: m.player.Level, Exp: m.player.Exp}
	}
	m.player = player
	m.persistExperience(ctx)
	if res.DidLevelUp {
		m.record(ctx, activity.TypeLevelUp, sessionID, "", fmt.Sprintf("reached level %d", res.Level))
	}
	return res
}

func (m *Manager) persistState(ctx context.Context) {
	saved := savedState{
		Progress:        make(map[string]Progress, len(m.accepted)),
		States:          make(map[string]SessionState, len(m.accepted)),
		Completed:       m.completed,
		CustomLandmarks: m.custom,
	}
	for _, id := range m.order {
		rec, ok := m.accepted[id]
		if !ok {
			continue
		}
		saved.Accepted = append(saved.Accepted, rec.session)
		saved.Progress[id] = rec.progress
		saved.States[id] = rec.state
	}

	data, err := json.Marshal(saved)
	if err != nil {
		m.logger.Error("encoding game state", "error", err)
		return
	}
	if err := m.store.Set(ctx, gameStateKey, data); err != nil {
		m.logger.Warn("saving game state", "error", err)
	}
}

func (m *Manager) persistExperience(ctx context.Context) {
	data, err := json.Marshal(m.player)
	if err != nil {
		m.logger.Error("encoding experience", "error", err)
		return
	}
	if err := m.store.Set(ctx, experienceKey, data); err != nil {
		m.logger.Warn("saving experience", "error", err)
	}
}

func (m *Manager) persistCountdown(ctx context.Context, sessionID string, cd Countdown) {
	data, err := json.Marshal(cd)
	if err != nil {
		m.logger.Error("encoding countdown", "session", sessionID, "error", err)
		return
	}
	if err := m.store.Set(ctx, timerKey(sessionID), data); err != nil {
		m.logger.Warn("saving countdown", "session", sessionID, "error", err)
	}
}

func (m *Manager) deleteCountdown(ctx context.Context, sessionID string) {
	if err := m.store.Delete(ctx, timerKey(sessionID)); err != nil && !errors.Is(err, repository.ErrNotFound) {
		m.logger.Warn("clearing countdown", "session", sessionID, "error", err)
	}
}

func (m *Manager) record(ctx context.Context, typ activity.Type, sessionID, landmarkID, summary string) {
	if m.events == nil {
		return
	}
	entry := &activity.Entry{
		SessionID:  sessionID,
		LandmarkID: landmarkID,
		Type:       typ,
		Summary:    summary,
		CreatedAt:  m.now(),
	}
	if err := m.events.Log(ctx, entry); err != nil {
		m.logger.Warn("recording activity", "type", typ, "error", err)
	}
}

func cloneSession(sess Session) Session {
	out := sess
	out.Landmarks = make([]Landmark, len(sess.Landmarks))
	copy(out.Landmarks, sess.Landmarks)
	return out
}

func cloneProgress(prog Progress) Progress {
	out := prog
	out.FoundStatus = make([]*bool, len(prog.FoundStatus))
	for i, status := range prog.FoundStatus {
		if status != nil {
			value := *status
			out.FoundStatus[i] = &value
		}
	}
	if prog.UniqueFound != nil {
		value := *prog.UniqueFound
		out.UniqueFound = &value
	}
	return out
}
