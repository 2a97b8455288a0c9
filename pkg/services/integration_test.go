package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/services"
	"github.com/scribe-research/scribe/test/util"
)

func newMissionFixture(t *testing.T) (*services.MissionService, *services.NoteService, *services.LogService, *services.EventService, string) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	missions := services.NewMissionService(client)
	notes := services.NewNoteService(client)
	logs := services.NewLogService(client)
	events := services.NewEventService(client)

	missionID := uuid.New().String()
	_, err := missions.CreateMission(context.Background(), missionID, "user-1",
		models.CreateMissionRequest{
			UserRequest: "Summarize recent work on X",
			UseWeb:      true,
		},
		models.MissionMetadata{
			ToolSelection: models.ToolSelection{WebSearch: true},
		})
	require.NoError(t, err)

	return missions, notes, logs, events, missionID
}

func TestMissionService_CreateRejectsNoCapabilities(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	missions := services.NewMissionService(client)

	_, err := missions.CreateMission(context.Background(), uuid.New().String(), "u1",
		models.CreateMissionRequest{UserRequest: "anything"},
		models.MissionMetadata{})
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
}

func TestMissionService_UpdatedAtMonotonic(t *testing.T) {
	missions, _, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	m1, err := missions.GetMission(ctx, missionID)
	require.NoError(t, err)

	require.NoError(t, missions.SaveFinalReport(ctx, missionID, "draft"))
	m2, err := missions.GetMission(ctx, missionID)
	require.NoError(t, err)

	assert.False(t, m2.UpdatedAt.Before(m1.UpdatedAt))
}

func TestMissionService_TerminalStatusSticky(t *testing.T) {
	missions, _, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	require.NoError(t, missions.UpdateStatus(ctx, missionID, models.StatusCompleted, "", false))

	err := missions.UpdateStatus(ctx, missionID, models.StatusRunning, "", false)
	assert.ErrorIs(t, err, services.ErrTerminalStatus)

	// Explicit resume paths force the transition.
	require.NoError(t, missions.UpdateStatus(ctx, missionID, models.StatusStopped, "", true))
	m, err := missions.GetMission(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStopped, string(m.Status))
}

func TestMissionService_ClaimForRun(t *testing.T) {
	missions, _, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	// Not requested yet: claim refuses.
	_, err := missions.ClaimForRun(ctx, missionID)
	assert.ErrorIs(t, err, services.ErrNotClaimed)

	require.NoError(t, missions.RequestStart(ctx, missionID))
	m, err := missions.ClaimForRun(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlanning, string(m.Status))
	assert.False(t, m.StartRequested)

	// Double claim loses.
	_, err = missions.ClaimForRun(ctx, missionID)
	assert.ErrorIs(t, err, services.ErrNotClaimed)
}

func TestMissionService_MetadataRoundTrip(t *testing.T) {
	missions, _, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	metadata := models.MissionMetadata{
		ToolSelection:  models.ToolSelection{WebSearch: true, LocalRAG: true},
		FinalQuestions: []string{"q1", "q2"},
		CurrentPhase:   "structured_research",
		CurrentRound:   2,
		Extra:          map[string]any{"custom": "value"},
	}
	require.NoError(t, missions.SaveMetadata(ctx, missionID, metadata))

	m, err := missions.GetMission(ctx, missionID)
	require.NoError(t, err)
	got, err := services.MetadataOf(m)
	require.NoError(t, err)
	assert.Equal(t, metadata.FinalQuestions, got.FinalQuestions)
	assert.Equal(t, 2, got.CurrentRound)
	assert.Equal(t, "value", got.Extra["custom"])
}

func TestMissionService_PlanValidationEnforced(t *testing.T) {
	missions, _, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	bad := &models.Plan{ReportOutline: []*models.Section{
		{SectionID: "dup", Title: "A"},
		{SectionID: "dup", Title: "B"},
	}}
	err := missions.SavePlan(ctx, missionID, bad)
	assert.True(t, services.IsValidation(err))

	good := &models.Plan{MissionGoal: "g", ReportOutline: []*models.Section{
		{SectionID: "a", Title: "A"},
	}}
	require.NoError(t, missions.SavePlan(ctx, missionID, good))

	m, err := missions.GetMission(ctx, missionID)
	require.NoError(t, err)
	plan, err := services.PlanOf(m)
	require.NoError(t, err)
	assert.Equal(t, "g", plan.MissionGoal)
}

func TestMissionService_UsageRollup(t *testing.T) {
	missions, _, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	require.NoError(t, missions.AddMissionUsage(ctx, missionID, models.MissionStats{
		TotalCost: 0.25, TotalPromptTokens: 100, TotalWebSearchCalls: 1,
	}))
	require.NoError(t, missions.AddMissionUsage(ctx, missionID, models.MissionStats{
		TotalCost: 0.75, TotalCompletionTokens: 50,
	}))

	stats, err := missions.Stats(ctx, missionID)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stats.TotalCost, 1e-9)
	assert.Equal(t, 100, stats.TotalPromptTokens)
	assert.Equal(t, 50, stats.TotalCompletionTokens)
	assert.Equal(t, 1, stats.TotalWebSearchCalls)
}

func TestNoteService_CreateListTruncate(t *testing.T) {
	_, notes, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	for round := 0; round <= 2; round++ {
		_, err := notes.CreateNote(ctx, models.CreateNoteRequest{
			MissionID:  missionID,
			Content:    "evidence",
			SourceType: models.SourceTypeDocument,
			Round:      round,
		})
		require.NoError(t, err)
	}

	all, total, err := notes.ListNotes(ctx, missionID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	// Resume-from-round truncation: nothing with round >= 1 survives.
	n, err := notes.DeleteNotesFromRound(ctx, missionID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, _, err := notes.ListNotes(ctx, missionID, 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 0, remaining[0].Round)
}

func TestNoteService_AssignmentIsOnlyMutation(t *testing.T) {
	_, notes, _, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	n, err := notes.CreateNote(ctx, models.CreateNoteRequest{
		MissionID:  missionID,
		Content:    "original content",
		SourceType: models.SourceTypeWeb,
		SourceID:   "https://a.example",
	})
	require.NoError(t, err)

	require.NoError(t, notes.UpdateAssignment(ctx, models.NoteAssignment{
		NoteID:            n.NoteID,
		SectionID:         "intro",
		PotentialSections: []string{"intro", "body"},
		IsRelevant:        true,
	}))

	got, _, err := notes.ListNotes(ctx, missionID, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "original content", got[0].Content)
	assert.Equal(t, "intro", got[0].SectionID)
	assert.Equal(t, []string{"intro", "body"}, got[0].PotentialSections)
}

func TestLogService_AppendUniqueAndTruncate(t *testing.T) {
	_, _, logs, _, missionID := newMissionFixture(t)
	ctx := context.Background()

	e1, err := logs.Append(ctx, models.ExecutionLogEntry{
		MissionID: missionID,
		AgentName: "ResearchAgent",
		Action:    "Research Round 1",
		Status:    models.LogStatusRunning,
		Round:     1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, e1.LogID)

	// Duplicate log_id rejected.
	_, err = logs.Append(ctx, models.ExecutionLogEntry{
		MissionID: missionID,
		LogID:     e1.LogID,
		AgentName: "ResearchAgent",
		Action:    "dup",
		Status:    models.LogStatusSuccess,
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	_, err = logs.Append(ctx, models.ExecutionLogEntry{
		MissionID: missionID,
		AgentName: "WritingAgent",
		Action:    "Writing Pass 1",
		Status:    models.LogStatusSuccess,
		Round:     2,
	})
	require.NoError(t, err)

	n, err := logs.DeleteLogEntriesFromRound(ctx, missionID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, total, err := logs.ListLogEntries(ctx, missionID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Research Round 1", entries[0].Action)
}

func TestEventService_PersistAndCatchup(t *testing.T) {
	_, _, _, events, missionID := newMissionFixture(t)
	ctx := context.Background()

	channel := "mission:" + missionID
	for i := 0; i < 3; i++ {
		require.NoError(t, events.PersistEvent(ctx, missionID, channel, map[string]any{"seq": i}))
	}

	all, err := events.GetEventsSince(ctx, channel, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	later, err := events.GetEventsSince(ctx, channel, all[0].ID)
	require.NoError(t, err)
	assert.Len(t, later, 2)

	n, err := events.CleanupMissionEvents(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
