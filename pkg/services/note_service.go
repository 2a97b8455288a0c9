package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/ent/note"
	"github.com/scribe-research/scribe/pkg/models"
)

// NoteService manages evidence notes.
type NoteService struct {
	client *ent.Client
}

// NewNoteService creates a NoteService.
func NewNoteService(client *ent.Client) *NoteService {
	return &NoteService{client: client}
}

// CreateNote persists a new note.
func (s *NoteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	if req.MissionID == "" {
		return models.Note{}, NewValidationError("mission_id", "required")
	}
	if req.Content == "" {
		return models.Note{}, NewValidationError("content", "required")
	}

	builder := s.client.Note.Create().
		SetID(uuid.New().String()).
		SetMissionID(req.MissionID).
		SetContent(req.Content).
		SetSourceType(note.SourceType(req.SourceType)).
		SetRound(req.Round)

	if req.SourceID != "" {
		builder.SetSourceID(req.SourceID)
	}
	if req.SourceMetadata != nil {
		builder.SetSourceMetadata(req.SourceMetadata)
	}
	if req.SectionID != "" {
		builder.SetSectionID(req.SectionID)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return NoteModel(n), nil
}

// ListNotes returns a mission's notes ordered by creation time.
func (s *NoteService) ListNotes(ctx context.Context, missionID string, limit, offset int) ([]models.Note, int, error) {
	query := s.client.Note.Query().
		Where(note.MissionIDEQ(missionID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Order(ent.Asc(note.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]models.Note, 0, len(rows))
	for _, n := range rows {
		notes = append(notes, NoteModel(n))
	}
	return notes, totalCount, nil
}

// NotesForSection returns relevant notes assigned to a section.
func (s *NoteService) NotesForSection(ctx context.Context, missionID, sectionID string) ([]models.Note, error) {
	rows, err := s.client.Note.Query().
		Where(
			note.MissionIDEQ(missionID),
			note.SectionIDEQ(sectionID),
			note.IsRelevantEQ(true),
		).
		Order(ent.Asc(note.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query section notes: %w", err)
	}
	notes := make([]models.Note, 0, len(rows))
	for _, n := range rows {
		notes = append(notes, NoteModel(n))
	}
	return notes, nil
}

// UpdateAssignment updates a note's assignment hints. The only mutation
// allowed after creation.
func (s *NoteService) UpdateAssignment(ctx context.Context, a models.NoteAssignment) error {
	update := s.client.Note.UpdateOneID(a.NoteID).
		SetIsRelevant(a.IsRelevant)
	if a.SectionID != "" {
		update = update.SetSectionID(a.SectionID)
	}
	if a.PotentialSections != nil {
		update = update.SetPotentialSections(a.PotentialSections)
	}
	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// DeleteNotesFromRound removes all notes with round >= fromRound. Used by
// resume-from-round truncation.
func (s *NoteService) DeleteNotesFromRound(ctx context.Context, missionID string, fromRound int) (int, error) {
	n, err := s.client.Note.Delete().
		Where(
			note.MissionIDEQ(missionID),
			note.RoundGTE(fromRound),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes from round %d: %w", fromRound, err)
	}
	return n, nil
}
