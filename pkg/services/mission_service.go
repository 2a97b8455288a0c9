package services

import (
	"context"
	"fmt"
	"time"

	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/ent/mission"
	"github.com/scribe-research/scribe/pkg/models"
)

// writeTimeout bounds critical writes that must land even when the caller's
// context is already cancelled (terminal status updates, usage deltas).
const writeTimeout = 10 * time.Second

// MissionService manages mission rows.
type MissionService struct {
	client *ent.Client
}

// NewMissionService creates a MissionService.
func NewMissionService(client *ent.Client) *MissionService {
	return &MissionService{client: client}
}

// CreateMission persists a new mission in status pending.
func (s *MissionService) CreateMission(httpCtx context.Context, missionID, userID string, req models.CreateMissionRequest, metadata models.MissionMetadata) (*ent.Mission, error) {
	if missionID == "" {
		return nil, NewValidationError("mission_id", "required")
	}
	if req.UserRequest == "" {
		return nil, NewValidationError("user_request", "required")
	}
	if !metadata.ToolSelection.LocalRAG && !metadata.ToolSelection.WebSearch {
		return nil, NewValidationError("tool_selection", "requires at least one of local RAG or web search")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	md, err := toJSONMap(metadata)
	if err != nil {
		return nil, fmt.Errorf("encode mission metadata: %w", err)
	}

	builder := s.client.Mission.Create().
		SetID(missionID).
		SetUserRequest(req.UserRequest).
		SetUserID(userID).
		SetStatus(mission.StatusPending).
		SetUseWeb(req.UseWeb).
		SetMetadata(md)

	if req.ChatID != "" {
		builder.SetChatID(req.ChatID)
	}
	if req.DocumentGroupID != "" {
		builder.SetDocumentGroupID(req.DocumentGroupID)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return m, nil
}

// GetMission retrieves a mission by ID.
func (s *MissionService) GetMission(ctx context.Context, missionID string) (*ent.Mission, error) {
	m, err := s.client.Mission.Query().
		Where(mission.IDEQ(missionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return m, nil
}

// ListMissions lists missions with filtering and pagination.
func (s *MissionService) ListMissions(ctx context.Context, filters models.MissionFilters) ([]*ent.Mission, int, error) {
	query := s.client.Mission.Query()

	if filters.Status != "" {
		query = query.Where(mission.StatusEQ(mission.Status(filters.Status)))
	}
	if filters.UserID != "" {
		query = query.Where(mission.UserIDEQ(filters.UserID))
	}
	if filters.ChatID != "" {
		query = query.Where(mission.ChatIDEQ(filters.ChatID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(mission.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(mission.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count missions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	missions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, totalCount, nil
}

// RequestStart marks a mission for pickup by the worker pool.
func (s *MissionService) RequestStart(ctx context.Context, missionID string) error {
	err := s.client.Mission.UpdateOneID(missionID).
		SetStartRequested(true).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// ClaimForRun conditionally transitions a mission into planning for a
// worker. Only missions in a resumable status with start_requested set are
// claimed; a zero-row update means another worker won or the mission moved.
func (s *MissionService) ClaimForRun(ctx context.Context, missionID string) (*ent.Mission, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	n, err := s.client.Mission.Update().
		Where(
			mission.IDEQ(missionID),
			mission.StartRequestedEQ(true),
			mission.StatusIn(
				mission.StatusPending,
				mission.StatusStopped,
				mission.StatusPaused,
				mission.StatusFailed,
			),
		).
		SetStatus(mission.StatusPlanning).
		SetStartRequested(false).
		ClearErrorInfo().
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim mission: %w", err)
	}
	if n == 0 {
		return nil, ErrNotClaimed
	}
	return s.GetMission(claimCtx, missionID)
}

// UpdateStatus transitions a mission's status. Terminal statuses are sticky:
// a transition out of completed/failed is rejected unless force is set
// (explicit resume paths).
func (s *MissionService) UpdateStatus(ctx context.Context, missionID, status string, errorInfo string, force bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	current, err := s.GetMission(writeCtx, missionID)
	if err != nil {
		return err
	}
	if models.IsTerminalStatus(string(current.Status)) && !force {
		return ErrTerminalStatus
	}

	update := s.client.Mission.UpdateOneID(missionID).
		SetStatus(mission.Status(status))

	if status == models.StatusFailed && errorInfo != "" {
		update = update.SetErrorInfo(errorInfo)
	} else {
		update = update.ClearErrorInfo()
	}
	if models.IsTerminalStatus(status) {
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update mission status: %w", err)
	}
	return nil
}

// SaveMetadata writes the typed metadata blob.
func (s *MissionService) SaveMetadata(ctx context.Context, missionID string, metadata models.MissionMetadata) error {
	md, err := toJSONMap(metadata)
	if err != nil {
		return fmt.Errorf("encode mission metadata: %w", err)
	}
	err = s.client.Mission.UpdateOneID(missionID).
		SetMetadata(md).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SavePlan validates and writes the plan blob.
func (s *MissionService) SavePlan(ctx context.Context, missionID string, plan *models.Plan) error {
	if err := plan.Validate(); err != nil {
		return NewValidationError("plan", err.Error())
	}
	p, err := toJSONMap(plan)
	if err != nil {
		return fmt.Errorf("encode mission plan: %w", err)
	}
	err = s.client.Mission.UpdateOneID(missionID).
		SetPlan(p).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SavePads writes the pads blob.
func (s *MissionService) SavePads(ctx context.Context, missionID string, pads models.Pads) error {
	p, err := toJSONMap(pads)
	if err != nil {
		return fmt.Errorf("encode mission pads: %w", err)
	}
	err = s.client.Mission.UpdateOneID(missionID).
		SetPads(p).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SaveSectionContent writes the per-section written content map.
func (s *MissionService) SaveSectionContent(ctx context.Context, missionID string, content map[string]string) error {
	err := s.client.Mission.UpdateOneID(missionID).
		SetSectionContent(content).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SaveFinalReport writes the final report.
func (s *MissionService) SaveFinalReport(ctx context.Context, missionID, report string) error {
	err := s.client.Mission.UpdateOneID(missionID).
		SetFinalReport(report).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// AddMissionUsage increments the mission's usage rollup columns.
// Implements usage.StatsStore.
func (s *MissionService) AddMissionUsage(ctx context.Context, missionID string, delta models.MissionStats) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.client.Mission.UpdateOneID(missionID).
		AddTotalCost(delta.TotalCost).
		AddTotalPromptTokens(delta.TotalPromptTokens).
		AddTotalCompletionTokens(delta.TotalCompletionTokens).
		AddTotalNativeTokens(delta.TotalNativeTokens).
		AddTotalWebSearchCalls(delta.TotalWebSearchCalls).
		Exec(writeCtx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// Stats returns the persisted usage rollup.
func (s *MissionService) Stats(ctx context.Context, missionID string) (models.MissionStats, error) {
	m, err := s.GetMission(ctx, missionID)
	if err != nil {
		return models.MissionStats{}, err
	}
	return models.MissionStats{
		TotalCost:             m.TotalCost,
		TotalPromptTokens:     m.TotalPromptTokens,
		TotalCompletionTokens: m.TotalCompletionTokens,
		TotalNativeTokens:     m.TotalNativeTokens,
		TotalWebSearchCalls:   m.TotalWebSearchCalls,
	}, nil
}

// FindStrandedMissions returns missions left in a non-terminal working
// state — the process died mid-run. Called once at boot.
func (s *MissionService) FindStrandedMissions(ctx context.Context) ([]*ent.Mission, error) {
	missions, err := s.client.Mission.Query().
		Where(mission.StatusIn(mission.StatusPlanning, mission.StatusRunning)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stranded missions: %w", err)
	}
	return missions, nil
}
