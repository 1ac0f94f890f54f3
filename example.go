package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// Message is one role-tagged turn in a training conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TrainingExample is a single JSONL record: a conversation, plus the
// tool schemas the conversation exercises, if any.
type TrainingExample struct {
	Messages []Message `json:"messages"`
	Tools    []Tool    `json:"tools,omitempty"`
}

// Tool is a function declaration in the shape fine-tuning APIs expect.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction describes one callable function and its JSON-schema
// parameter object.
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type toolCall struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Parameters toolCallParams `json:"parameters"`
}

type toolCallParams struct {
	ShortcodeName string            `json:"shortcode_name"`
	Parameters    map[string]string `json:"parameters"`
}

const toolName = "use_hinode_shortcode"

// idGenerator produces tool-call identifiers. Production uses randomID;
// tests substitute a deterministic sequence.
type idGenerator func() string

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomID returns a 9-character alphanumeric identifier. Uniqueness is
// left to the size of the space.
func randomID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// synthesizer turns parsed documents and extracted shortcodes into
// training examples.
type synthesizer struct {
	newID idGenerator
}

// plainExample builds the title/description Q&A pair, or nil when the
// front matter has no usable title and description.
func (s synthesizer) plainExample(meta map[string]any) *TrainingExample {
	title := stringField(meta, "title")
	desc := stringField(meta, "description")
	if title == "" || desc == "" {
		return nil
	}
	return &TrainingExample{
		Messages: []Message{
			{Role: "user", Content: fmt.Sprintf("What is %s used for?", title)},
			{Role: "assistant", Content: desc},
		},
	}
}

// toolExample wraps one extracted shortcode in a synthetic tool-call
// conversation: request, JSON-encoded invocation, confirmation. The
// tool schema rides along on every example so each JSONL record is
// self-contained.
func (s synthesizer) toolExample(sc ShortcodeExample) TrainingExample {
	call := toolCall{
		ID:   s.newID(),
		Name: toolName,
		Parameters: toolCallParams{
			ShortcodeName: sc.Name,
			Parameters:    sc.Parameters,
		},
	}
	paramsJSON, _ := json.Marshal(sc.Parameters)
	callJSON, _ := json.Marshal(call)

	return TrainingExample{
		Messages: []Message{
			{Role: "user", Content: fmt.Sprintf("Create a %s shortcode with these parameters: %s", sc.Name, paramsJSON)},
			{Role: "assistant", Content: string(callJSON)},
			{Role: "assistant", Content: fmt.Sprintf("I've created the %s shortcode.", sc.Name)},
		},
		Tools: []Tool{shortcodeTool()},
	}
}

func shortcodeTool() Tool {
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        toolName,
			Description: "Use the hinode shortcode with the given parameters",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"shortcode_name": map[string]any{
						"type":        "string",
						"description": "The name of the shortcode",
					},
					"parameters": map[string]any{
						"type":        "object",
						"description": "The parameters for the shortcode",
						"additionalProperties": map[string]any{
							"type": "string",
						},
					},
				},
				"required": []string{"shortcode_name", "parameters"},
			},
		},
	}
}

func stringField(meta map[string]any, key string) string {
	s, _ := meta[key].(string)
	return s
}
