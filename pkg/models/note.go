package models

import "time"

// Note source types.
const (
	SourceTypeDocument       = "document"
	SourceTypeDocumentWindow = "document_window"
	SourceTypeWeb            = "web"
	SourceTypeInternal       = "internal"
)

// Note is a typed evidence atom extracted from a source during research.
// Immutable after creation except for the assignment hints
// (PotentialSections, IsRelevant, SectionID).
type Note struct {
	NoteID            string         `json:"note_id"`
	MissionID         string         `json:"mission_id"`
	Content           string         `json:"content"`
	SourceType        string         `json:"source_type"`
	SourceID          string         `json:"source_id,omitempty"`
	SourceMetadata    map[string]any `json:"source_metadata,omitempty"`
	Round             int            `json:"round"`
	SectionID         string         `json:"section_id,omitempty"`
	PotentialSections []string       `json:"potential_sections,omitempty"`
	IsRelevant        bool           `json:"is_relevant"`
	CreatedAt         time.Time      `json:"created_at"`
}

// CreateNoteRequest contains fields for creating a note.
type CreateNoteRequest struct {
	MissionID      string         `json:"mission_id"`
	Content        string         `json:"content"`
	SourceType     string         `json:"source_type"`
	SourceID       string         `json:"source_id,omitempty"`
	SourceMetadata map[string]any `json:"source_metadata,omitempty"`
	Round          int            `json:"round"`
	SectionID      string         `json:"section_id,omitempty"`
}

// NoteAssignment updates a note's assignment hints.
type NoteAssignment struct {
	NoteID            string   `json:"note_id"`
	SectionID         string   `json:"section_id,omitempty"`
	PotentialSections []string `json:"potential_sections,omitempty"`
	IsRelevant        bool     `json:"is_relevant"`
}
