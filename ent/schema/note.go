package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note holds the schema definition for the Note entity: a typed evidence
// atom gathered during research. Immutable after creation except for the
// assignment hints maintained by the reflection/assigner agents.
type Note struct {
	ent.Schema
}

// Fields of the Note.
func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("note_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.Text("content"),
		field.Enum("source_type").
			Values("document", "document_window", "web", "internal"),
		field.String("source_id").
			Optional().
			Comment("Chunk/doc id, URL, or empty for internal notes"),
		field.JSON("source_metadata", map[string]interface{}{}).
			Optional().
			Comment("url, title, original_filename, overlapping_chunks, ..."),
		field.Int("round").
			Default(0).
			Comment("Structured research round that produced the note; 0 = initial exploration"),
		field.String("section_id").
			Optional().
			Comment("Assigned outline section"),
		field.JSON("potential_sections", []string{}).
			Optional(),
		field.Bool("is_relevant").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Note.
func (Note) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("notes").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Note.
func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "created_at"),
		index.Fields("mission_id", "round"),
		index.Fields("mission_id", "section_id"),
	}
}
