package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LogEntry holds the schema definition for the LogEntry entity: one
// append-only execution log row per agent action or tool invocation.
type LogEntry struct {
	ent.Schema
}

// Fields of the LogEntry.
func (LogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("agent_name"),
		field.String("action"),
		field.Enum("status").
			Values("success", "failure", "warning", "running"),
		field.Text("input_summary").
			Optional(),
		field.Text("output_summary").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("full_input", map[string]interface{}{}).
			Optional(),
		field.JSON("full_output", map[string]interface{}{}).
			Optional(),
		field.JSON("model_details", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional(),
		field.JSON("file_interactions", []string{}).
			Optional(),
		field.Float("cost").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Int("native_tokens").
			Optional().
			Nillable(),
		field.Int("round").
			Default(0),
	}
}

// Edges of the LogEntry.
func (LogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("log_entries").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LogEntry.
func (LogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "timestamp"),
		index.Fields("mission_id", "round"),
	}
}
