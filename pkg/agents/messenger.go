package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
)

// Messenger refines the user's request into final research questions,
// optionally informed by chat history. Its output is written straight into
// the mission's final_questions.
type Messenger struct {
	dispatcher *llm.Dispatcher
}

// NewMessenger creates a Messenger.
func NewMessenger(dispatcher *llm.Dispatcher) *Messenger {
	return &Messenger{dispatcher: dispatcher}
}

type messengerOutput struct {
	Questions        []string `json:"questions" jsonschema_description:"Refined final research questions"`
	ScratchpadUpdate string   `json:"scratchpad_update,omitempty"`
}

// RefineQuestions sharpens candidate questions against the request and any
// chat history. Falls back to the candidates untouched when the model
// returns nothing.
func (m *Messenger) RefineQuestions(ctx context.Context, b *Bundle, candidates []string, chatHistory string) ([]string, error) {
	prompt := fmt.Sprintf("User request: %s\n\nCandidate questions:\n- %s\n",
		b.UserRequest, strings.Join(candidates, "\n- "))
	if chatHistory != "" {
		prompt += "\nConversation so far:\n" + chatHistory
	}

	var out messengerOutput
	_, err := m.dispatcher.Call(ctx, b.spec(config.TierFast), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You finalize the research questions for a mission. Sharpen, merge, or drop candidates so the final set is specific and answerable. Keep the user's language and intent."},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "final_questions",
		Schema:     llm.GenerateSchema[messengerOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}
	if len(out.Questions) == 0 {
		return candidates, nil
	}
	return out.Questions, nil
}
