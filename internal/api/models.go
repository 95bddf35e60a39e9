package api

import (
	"github.com/farhanashraf/domain-assistants/internal/api/middleware"
	"github.com/farhanashraf/domain-assistants/internal/models"
)

type ChatRequest struct {
	Message string `json:"message" description:"The user's message"`
}

type ChatResponse struct {
	RequestID string         `json:"request_id" description:"Unique invocation identifier"`
	Domain    string         `json:"domain" description:"Assistant domain"`
	Outcome   models.Outcome `json:"outcome" description:"guardrail_rejected, handrail_rejected, or answered"`
	Reply     string         `json:"reply" description:"The outgoing message"`
	Model     string         `json:"model,omitempty" description:"Model ID, set when the model produced the reply"`
}

type AssistantInfo struct {
	Name    string `json:"name" description:"Assistant domain name"`
	Welcome string `json:"welcome" description:"Welcome message emitted on session start"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return middleware.ErrEmptyMessage
	}
	return nil
}
