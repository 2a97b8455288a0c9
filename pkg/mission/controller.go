package mission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-research/scribe/pkg/agents"
	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/services"
	"github.com/scribe-research/scribe/pkg/usage"
)

// Mission phases, persisted to metadata for resume.
const (
	PhaseQuestions   = "question_confirmation"
	PhaseExploration = "initial_exploration"
	PhaseOutline     = "outline_generation"
	PhaseResearch    = "structured_research"
	PhaseAssignment  = "note_assignment"
	PhaseWriting     = "writing"
	PhaseFinalize    = "finalization"
)

// AgentSet groups the agent units the controller drives.
type AgentSet struct {
	Messenger  *agents.Messenger
	Planner    *agents.Planner
	Researcher *agents.Researcher
	Reflection *agents.Reflection
	Writer     *agents.Writer
	Assigner   *agents.NoteAssigner
}

// Controller orchestrates missions from request to report.
type Controller struct {
	cfg        *config.Config
	store      *Store
	missions   *services.MissionService
	notes      *services.NoteService
	logs       *services.LogService
	events     *services.EventService
	bus        *bus.Bus
	meter      *usage.Meter
	dispatcher *llm.Dispatcher
	agents     AgentSet
	pool       *Pool

	// resolvers holds the per-mission settings resolver for running
	// missions; rebuilt from metadata on resume.
	resolvers resolverRegistry
}

// NewController wires the controller. Call AttachPool before Start is used.
func NewController(
	cfg *config.Config,
	store *Store,
	missions *services.MissionService,
	notes *services.NoteService,
	logs *services.LogService,
	events *services.EventService,
	b *bus.Bus,
	meter *usage.Meter,
	dispatcher *llm.Dispatcher,
	agentSet AgentSet,
) *Controller {
	return &Controller{
		cfg:        cfg,
		store:      store,
		missions:   missions,
		notes:      notes,
		logs:       logs,
		events:     events,
		bus:        b,
		meter:      meter,
		dispatcher: dispatcher,
		agents:     agentSet,
	}
}

// AttachPool connects the worker pool (built after the controller because
// the pool's runner is the controller itself).
func (c *Controller) AttachPool(p *Pool) {
	c.pool = p
}

// CreateMission creates a mission in status pending, capturing a settings
// snapshot into metadata. Synchronous.
func (c *Controller) CreateMission(ctx context.Context, uc *models.UserContext, req models.CreateMissionRequest) (string, error) {
	if uc == nil || uc.UserID == "" {
		return "", services.NewValidationError("user", "required")
	}

	toolSelection := models.ToolSelection{
		LocalRAG:  req.DocumentGroupID != "",
		WebSearch: req.UseWeb,
	}
	if !toolSelection.LocalRAG && !toolSelection.WebSearch {
		return "", services.NewValidationError("tool_selection", "mission needs web search or a document group")
	}

	metadata := models.MissionMetadata{
		ToolSelection:   toolSelection,
		DocumentGroupID: req.DocumentGroupID,
	}
	if uc.Settings != nil {
		snapshot := *uc.Settings
		metadata.SettingsSnapshot = &snapshot
	}
	if req.MissionSettings != nil {
		metadata.ResearchParams = *req.MissionSettings
	}

	missionID := uuid.New().String()
	if _, err := c.missions.CreateMission(ctx, missionID, uc.UserID, req, metadata); err != nil {
		return "", err
	}

	slog.Info("Mission created", "mission_id", missionID, "user_id", uc.UserID)
	return missionID, nil
}

// Start begins background execution. Idempotent for already-running
// missions. The current user settings are re-captured here as the
// authoritative snapshot — edits between create and start take effect.
func (c *Controller) Start(ctx context.Context, uc *models.UserContext, missionID string) error {
	if c.pool == nil {
		return fmt.Errorf("controller has no pool attached")
	}
	if c.pool.IsActive(missionID) {
		return nil
	}

	m, err := c.missions.GetMission(ctx, missionID)
	if err != nil {
		return err
	}
	if string(m.Status) == models.StatusRunning || string(m.Status) == models.StatusPlanning {
		return nil
	}
	if models.IsTerminalStatus(string(m.Status)) && string(m.Status) != models.StatusFailed {
		return services.ErrTerminalStatus
	}

	// Authoritative settings re-capture at start time.
	if err := c.store.UpdateMetadata(ctx, missionID, func(md *models.MissionMetadata) {
		if uc != nil && uc.Settings != nil {
			snapshot := *uc.Settings
			md.SettingsSnapshot = &snapshot
		}
	}); err != nil {
		return err
	}

	if err := c.missions.RequestStart(ctx, missionID); err != nil {
		return err
	}
	return c.pool.Enqueue(missionID)
}

// Stop cooperatively cancels a mission. Safe to call repeatedly; a stop on
// an already-terminal mission is a no-op returning success.
func (c *Controller) Stop(ctx context.Context, missionID string) error {
	m, err := c.missions.GetMission(ctx, missionID)
	if err != nil {
		return err
	}
	if models.IsTerminalStatus(string(m.Status)) || string(m.Status) == models.StatusStopped {
		return nil
	}

	if c.pool != nil && c.pool.CancelMission(missionID) {
		// The runner observes the cancellation and records stopped itself.
		return nil
	}

	// Not running here (e.g. queued but unclaimed): mark stopped directly.
	return c.setStatus(ctx, missionID, models.StatusStopped, "", false)
}

// Resume re-enters a stopped, paused, or failed mission at its last
// recorded phase and round.
func (c *Controller) Resume(ctx context.Context, missionID string) error {
	m, err := c.missions.GetMission(ctx, missionID)
	if err != nil {
		return err
	}
	switch string(m.Status) {
	case models.StatusStopped, models.StatusPaused, models.StatusFailed:
	case models.StatusPending:
	default:
		return services.NewValidationError("status", fmt.Sprintf("cannot resume a %s mission", m.Status))
	}

	c.bus.Reopen(missionID)
	if err := c.missions.RequestStart(ctx, missionID); err != nil {
		return err
	}
	return c.pool.Enqueue(missionID)
}

// ResumeFromRound truncates artifacts with round >= roundNum and re-enters
// structured research at that round. roundNum starts at 1.
func (c *Controller) ResumeFromRound(ctx context.Context, missionID string, roundNum int) error {
	if roundNum < 1 {
		return services.NewValidationError("round_num", "must be >= 1")
	}
	if _, err := c.missions.GetMission(ctx, missionID); err != nil {
		return err
	}
	if c.pool != nil && c.pool.IsActive(missionID) {
		return services.NewValidationError("status", "stop the mission before resuming from a round")
	}

	// Tell subscribers to discard before data disappears underneath them.
	c.bus.Reopen(missionID)
	c.bus.PublishTruncate(ctx, missionID, roundNum)

	if err := c.store.TruncateFromRound(ctx, missionID, roundNum); err != nil {
		return err
	}
	if _, err := c.logs.DeleteLogEntriesFromRound(ctx, missionID, roundNum); err != nil {
		return err
	}
	if err := c.store.UpdateMetadata(ctx, missionID, func(md *models.MissionMetadata) {
		md.CurrentPhase = PhaseResearch
		md.CurrentRound = roundNum
	}); err != nil {
		return err
	}

	// Terminal statuses reopen only through this explicit path.
	if err := c.setStatus(ctx, missionID, models.StatusStopped, "", true); err != nil {
		return err
	}
	if err := c.missions.RequestStart(ctx, missionID); err != nil {
		return err
	}
	return c.pool.Enqueue(missionID)
}

// ReviseOutlineAndResume merges user feedback into the outline via the
// Planner (or applies an explicit override), persists, then resumes from
// the given round.
func (c *Controller) ReviseOutlineAndResume(ctx context.Context, uc *models.UserContext, missionID string, roundNum int, feedback string, override *models.Plan) error {
	if roundNum < 1 {
		return services.NewValidationError("round_num", "must be >= 1")
	}
	mc, err := c.store.Load(ctx, missionID)
	if err != nil {
		return err
	}
	if mc.Plan == nil {
		return services.NewValidationError("plan", "mission has no outline to revise")
	}

	var revised *models.Plan
	if override != nil {
		revised = override
	} else {
		b := c.bundle(mc, uc, 0)
		revised, err = c.agents.Planner.ReviseOutline(ctx, b, feedback)
		if err != nil {
			return fmt.Errorf("outline revision failed: %w", err)
		}
	}
	if err := c.store.SavePlan(ctx, missionID, revised); err != nil {
		return err
	}

	return c.ResumeFromRound(ctx, missionID, roundNum)
}

// UpdateReport stores a user-edited report. Deliberately does not touch the
// chat's updated_at.
func (c *Controller) UpdateReport(ctx context.Context, missionID, markdown string) error {
	return c.missions.SaveFinalReport(ctx, missionID, markdown)
}

// RecoverStranded flips missions left mid-run by a dead process to stopped.
// Called once at boot, before the pool starts.
func (c *Controller) RecoverStranded(ctx context.Context) error {
	stranded, err := c.missions.FindStrandedMissions(ctx)
	if err != nil {
		return err
	}
	for _, m := range stranded {
		slog.Warn("Recovering stranded mission", "mission_id", m.ID, "status", m.Status)
		if err := c.setStatus(ctx, m.ID, models.StatusStopped, "", false); err != nil {
			slog.Error("Failed to recover stranded mission", "mission_id", m.ID, "error", err)
		}
	}
	return nil
}

// --- helpers shared with the runner ---

// setStatus persists a status change and publishes it. force is reserved
// for the explicit resume paths that reopen terminal missions.
func (c *Controller) setStatus(ctx context.Context, missionID, status, errorInfo string, force bool) error {
	if err := c.missions.UpdateStatus(ctx, missionID, status, errorInfo, force); err != nil {
		return err
	}
	c.bus.PublishStatus(ctx, missionID, status)
	if models.IsTerminalStatus(status) {
		c.scheduleEventCleanup(missionID)
	}
	return nil
}

// log appends an execution log entry and publishes it as an update event.
// Logging failures are reported but never fail the caller — the user must
// always see a monotonically growing log, not a mission killed by it.
func (c *Controller) log(ctx context.Context, entry models.ExecutionLogEntry) models.ExecutionLogEntry {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	stored, err := c.logs.Append(ctx, entry)
	if err != nil {
		slog.Error("Failed to append execution log entry",
			"mission_id", entry.MissionID, "action", entry.Action, "error", err)
		stored = entry
		if stored.LogID == "" {
			stored.LogID = uuid.New().String()
		}
	}
	c.bus.PublishUpdate(ctx, entry.MissionID, &stored)
	return stored
}

// scheduleEventCleanup drops persisted events after the grace period so
// late subscribers can still catch up on the final state first.
func (c *Controller) scheduleEventCleanup(missionID string) {
	time.AfterFunc(90*time.Second, func() {
		if _, err := c.events.CleanupMissionEvents(context.Background(), missionID); err != nil {
			slog.Warn("Failed to cleanup mission events after grace period",
				"mission_id", missionID, "error", err)
		}
		c.store.Evict(missionID)
		c.meter.Forget(missionID)
		c.resolvers.drop(missionID)
	})
}

// classifyRunError maps a runner failure onto the terminal/stopped status.
func classifyRunError(err error) (status, errorInfo string) {
	switch {
	case errors.Is(err, context.Canceled):
		return models.StatusStopped, ""
	case errors.Is(err, context.DeadlineExceeded):
		return models.StatusFailed, "mission timed out"
	default:
		return models.StatusFailed, err.Error()
	}
}
