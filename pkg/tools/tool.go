// Package tools provides the named capability set invoked by agents:
// document search, web search, web page fetching, file reading, and a
// calculator. Tools return structured results and never propagate
// operational errors — failures surface as warnings, not mission failures.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/scribe-research/scribe/pkg/models"
)

// Feedback delivers transient progress signals from a tool to the mission's
// progress stream. Implementations must not block.
type Feedback interface {
	Emit(ctx context.Context, feedbackType string, data map[string]any)
}

// NopFeedback discards feedback. Used when no bus handle is available.
type NopFeedback struct{}

// Emit implements Feedback.
func (NopFeedback) Emit(context.Context, string, map[string]any) {}

// Call is one tool invocation.
type Call struct {
	MissionID string
	User      *models.UserContext
	Arguments json.RawMessage
	Feedback  Feedback // nil allowed
}

// feedback returns the call's feedback handle, never nil.
func (c *Call) feedback() Feedback {
	if c.Feedback == nil {
		return NopFeedback{}
	}
	return c.Feedback
}

// ToolError is a structured, user-friendly operational error. The mission
// continues; the controller logs it as a warning.
type ToolError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (e *ToolError) Error() string {
	return e.Message
}

// Result is a tool's reply. Exactly one of Content or Error is meaningful.
type Result struct {
	Content string
	Error   *ToolError

	// Notes are evidence candidates produced by search tools.
	Notes []models.CreateNoteRequest

	// FileInteractions lists files read, for the execution log.
	FileInteractions []string
}

// Tool is a named capability with a JSON-shaped input schema.
type Tool interface {
	Name() string
	Description() string
	InputSchema() any
	Execute(ctx context.Context, call Call) (*Result, error)
}

// Registry holds the tools available to agents.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Last registration wins for duplicate names.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return t, nil
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute looks up and runs a tool, decoding nothing — the tool owns its
// argument schema. A missing tool is an operational error, not a panic.
func (r *Registry) Execute(ctx context.Context, name string, call Call) (*Result, error) {
	t, err := r.Get(name)
	if err != nil {
		return &Result{Error: &ToolError{Message: err.Error()}}, nil
	}
	return t.Execute(ctx, call)
}

// schemaFor builds a strict JSON schema for a tool's argument struct.
func schemaFor[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
