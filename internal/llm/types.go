package llm

import (
	"encoding/json"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of the conversation fed to the model. Assistant
// messages may carry tool calls; tool messages carry the result of one call.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}

// ToolCall is the model's structured request to execute a named tool.
type ToolCall struct {
	ID   string
	Name string
	Args json.RawMessage
}

// ToolSpec describes a tool to the model.
type ToolSpec struct {
	Name        string
	Description string
	Schema      json.RawMessage
}

type ChatRequest struct {
	Instructions string
	Messages     []Message
	Tools        []ToolSpec
	MaxTokens    int
	Temperature  float64
}

// ChatResponse is one model round: either a final text answer or a batch of
// tool calls the host must execute and feed back. Raw keeps the undecoded
// provider payload for best-effort extraction when the shape is unexpected.
type ChatResponse struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason string
	Raw        []byte
}
