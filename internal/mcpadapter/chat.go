package mcpadapter

import (
	"context"

	"github.com/farhanashraf/domain-assistants/internal/agent"
	"github.com/farhanashraf/domain-assistants/internal/assistant"
	"github.com/farhanashraf/domain-assistants/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ChatInput is the MCP tool input schema, one tool per assistant domain.
type ChatInput struct {
	Message string `json:"message" jsonschema:"required,description=The user's message"`
}

// NewChatHandler returns a tool handler bound to one assistant.
// Pass the returned function to mcp.AddTool.
func NewChatHandler(pipeline *agent.Pipeline, asst *assistant.Assistant) func(context.Context, *mcp.CallToolRequest, ChatInput) (*mcp.CallToolResult, models.ChatResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ChatInput) (*mcp.CallToolResult, models.ChatResult, error) {
		result, err := pipeline.HandleMessage(ctx, asst, input.Message)
		if err != nil {
			return nil, models.ChatResult{}, err
		}
		return nil, result, nil
	}
}
