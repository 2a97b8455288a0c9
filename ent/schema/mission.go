package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission holds the schema definition for the Mission entity.
// One row per research mission; the serialized mission context (metadata,
// plan, pads) lives on this row, with notes and log entries denormalized
// into their own tables for pagination and resume truncation.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.Text("user_request").
			Comment("Original free-text research prompt"),
		field.String("chat_id").
			Optional(),
		field.String("user_id").
			Comment("Owning user (tagging only, no tenant isolation)"),
		field.Enum("status").
			Values("pending", "planning", "running", "stopped", "paused", "completed", "failed").
			Default("pending"),
		field.String("error_info").
			Optional().
			Nillable().
			Comment("Set only when status=failed"),
		field.Bool("use_web").
			Default(false),
		field.String("document_group_id").
			Optional(),
		field.Bool("start_requested").
			Default(false).
			Comment("Set by Start; workers only claim requested missions"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Serialized models.MissionMetadata"),
		field.JSON("plan", map[string]interface{}{}).
			Optional().
			Comment("Serialized models.Plan; null until planning completes"),
		field.JSON("pads", map[string]interface{}{}).
			Optional().
			Comment("Serialized models.Pads (goal/thought/scratch)"),
		field.JSON("section_content", map[string]string{}).
			Optional().
			Comment("Per-section written content keyed by section_id"),
		field.Text("final_report").
			Optional().
			Nillable().
			Comment("Null until writing completes"),

		// Usage rollups (written by the usage meter).
		field.Float("total_cost").
			Default(0),
		field.Int("total_prompt_tokens").
			Default(0),
		field.Int("total_completion_tokens").
			Default(0),
		field.Int("total_native_tokens").
			Default(0),
		field.Int("total_web_search_calls").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Monotonic across observable snapshots"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notes", Note.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("log_entries", LogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("chat_id"),
		index.Fields("status", "start_requested"),
		index.Fields("status", "created_at"),
	}
}
