package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/ent/logentry"
	"github.com/scribe-research/scribe/pkg/models"
)

// LogService manages the append-only execution log.
type LogService struct {
	client *ent.Client
}

// NewLogService creates a LogService.
func NewLogService(client *ent.Client) *LogService {
	return &LogService{client: client}
}

// Append persists a log entry, assigning log_id and timestamp when unset.
// Returns the stored entry.
func (s *LogService) Append(ctx context.Context, entry models.ExecutionLogEntry) (models.ExecutionLogEntry, error) {
	if entry.MissionID == "" {
		return models.ExecutionLogEntry{}, NewValidationError("mission_id", "required")
	}
	if entry.LogID == "" {
		entry.LogID = uuid.New().String()
	}

	builder := s.client.LogEntry.Create().
		SetID(entry.LogID).
		SetMissionID(entry.MissionID).
		SetAgentName(entry.AgentName).
		SetAction(entry.Action).
		SetStatus(logentry.Status(entry.Status)).
		SetInputSummary(entry.InputSummary).
		SetOutputSummary(entry.OutputSummary).
		SetRound(entry.Round)

	if !entry.Timestamp.IsZero() {
		builder.SetTimestamp(entry.Timestamp)
	}
	if entry.ErrorMessage != "" {
		builder.SetErrorMessage(entry.ErrorMessage)
	}
	if entry.FullInput != nil {
		builder.SetFullInput(entry.FullInput)
	}
	if entry.FullOutput != nil {
		builder.SetFullOutput(entry.FullOutput)
	}
	if entry.ModelDetails != nil {
		builder.SetModelDetails(entry.ModelDetails)
	}
	if entry.FileInteractions != nil {
		builder.SetFileInteractions(entry.FileInteractions)
	}
	if len(entry.ToolCalls) > 0 {
		calls := make([]map[string]interface{}, 0, len(entry.ToolCalls))
		for _, tc := range entry.ToolCalls {
			m, err := toJSONMap(tc)
			if err != nil {
				return models.ExecutionLogEntry{}, fmt.Errorf("encode tool call: %w", err)
			}
			calls = append(calls, m)
		}
		builder.SetToolCalls(calls)
	}
	if entry.Cost != 0 {
		builder.SetCost(entry.Cost)
	}
	if entry.PromptTokens != 0 {
		builder.SetPromptTokens(entry.PromptTokens)
	}
	if entry.CompletionTokens != 0 {
		builder.SetCompletionTokens(entry.CompletionTokens)
	}
	if entry.NativeTokens != 0 {
		builder.SetNativeTokens(entry.NativeTokens)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return models.ExecutionLogEntry{}, ErrAlreadyExists
		}
		return models.ExecutionLogEntry{}, fmt.Errorf("failed to append log entry: %w", err)
	}
	return LogEntryModel(row), nil
}

// ListLogEntries returns a mission's log in timestamp order.
func (s *LogService) ListLogEntries(ctx context.Context, missionID string, limit, offset int) ([]models.ExecutionLogEntry, int, error) {
	query := s.client.LogEntry.Query().
		Where(logentry.MissionIDEQ(missionID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Order(ent.Asc(logentry.FieldTimestamp)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list log entries: %w", err)
	}

	entries := make([]models.ExecutionLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LogEntryModel(row))
	}
	return entries, totalCount, nil
}

// DeleteLogEntriesFromRound removes log entries with round >= fromRound.
// Used by resume-from-round truncation.
func (s *LogService) DeleteLogEntriesFromRound(ctx context.Context, missionID string, fromRound int) (int, error) {
	n, err := s.client.LogEntry.Delete().
		Where(
			logentry.MissionIDEQ(missionID),
			logentry.RoundGTE(fromRound),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete log entries from round %d: %w", fromRound, err)
	}
	return n, nil
}
