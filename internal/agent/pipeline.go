package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/farhanashraf/domain-assistants/internal/assistant"
	"github.com/farhanashraf/domain-assistants/internal/llm"
	"github.com/farhanashraf/domain-assistants/internal/models"
	"github.com/farhanashraf/domain-assistants/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const defaultMaxToolRounds = 8

// Pipeline is the shared dispatch pipeline: guardrail, handrail, then a
// tool-augmented model conversation. It holds no per-request state and is
// safe for concurrent use.
type Pipeline struct {
	client        llm.ChatClient
	transcripts   store.TranscriptStore
	maxToolRounds int
	logger        *zerolog.Logger
}

func NewPipeline(client llm.ChatClient, transcripts store.TranscriptStore, maxToolRounds int, logger *zerolog.Logger) *Pipeline {
	if maxToolRounds <= 0 {
		maxToolRounds = defaultMaxToolRounds
	}
	if transcripts == nil {
		transcripts = store.NopStore{}
	}
	return &Pipeline{
		client:        client,
		transcripts:   transcripts,
		maxToolRounds: maxToolRounds,
		logger:        logger,
	}
}

// HandleMessage runs one user message through the pipeline. Exactly one of
// {guardrail rejection, handrail clarification, model reply} is produced; a
// model failure propagates to the transport.
func (p *Pipeline) HandleMessage(ctx context.Context, asst *assistant.Assistant, query string) (models.ChatResult, error) {
	result := models.ChatResult{
		RequestID: uuid.NewString(),
		Domain:    asst.Name(),
		CreatedAt: time.Now(),
	}

	if rejection := asst.Checks().Run(query); rejection != nil {
		result.Outcome = rejectionOutcome(rejection.Name)
		result.Reply = rejection.Message
		p.logger.Info().
			Str("request_id", result.RequestID).
			Str("domain", result.Domain).
			Str("check", rejection.Name).
			Msg("query rejected before dispatch")
		p.saveTranscript(ctx, result, query)
		return result, nil
	}

	reply, err := p.converse(ctx, asst, query)
	if err != nil {
		p.logger.Error().
			Err(err).
			Str("request_id", result.RequestID).
			Str("domain", result.Domain).
			Msg("model dispatch failed")
		return models.ChatResult{}, err
	}

	result.Outcome = models.OutcomeAnswered
	result.Reply = reply
	result.Model = p.client.ModelID()
	p.saveTranscript(ctx, result, query)
	return result, nil
}

// converse loops model rounds, executing tool calls and feeding their results
// back until the model produces a final answer.
func (p *Pipeline) converse(ctx context.Context, asst *assistant.Assistant, query string) (string, error) {
	params := asst.ModelParams()
	request := llm.ChatRequest{
		Instructions: asst.Instructions(),
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: query}},
		Tools:        asst.ToolSpecs(),
		MaxTokens:    params.MaxTokens,
		Temperature:  params.Temperature,
	}

	for round := 0; round < p.maxToolRounds; round++ {
		var response *llm.ChatResponse
		var err error
		if params.Retry {
			response, err = p.client.ConverseWithRetry(ctx, request)
		} else {
			response, err = p.client.Converse(ctx, request)
		}
		if err != nil {
			return "", err
		}

		if len(response.ToolCalls) == 0 {
			return p.extractText(response), nil
		}

		request.Messages = append(request.Messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   response.Text,
			ToolCalls: response.ToolCalls,
		})

		for _, call := range response.ToolCalls {
			output, err := asst.Tools().Invoke(ctx, call.Name, call.Args)
			if err != nil {
				// Surface the failure to the model instead of crashing the
				// conversation; the model decides how to recover.
				p.logger.Warn().
					Err(err).
					Str("domain", asst.Name()).
					Str("tool", call.Name).
					Msg("tool invocation failed")
				output = fmt.Sprintf("tool error: %v", err)
			}
			request.Messages = append(request.Messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    output,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}

	return "", fmt.Errorf("model did not produce a final answer within %d tool rounds", p.maxToolRounds)
}

// extractText returns the model's answer, falling back to a best-effort
// string of the raw payload when the response shape is unexpected.
func (p *Pipeline) extractText(response *llm.ChatResponse) string {
	if response.Text != "" {
		return response.Text
	}

	if len(response.Raw) > 0 {
		for _, path := range []string{"choices.0.message.content", "content.0.text"} {
			if value := gjson.GetBytes(response.Raw, path); value.Exists() && value.String() != "" {
				return value.String()
			}
		}
		return string(response.Raw)
	}

	return fmt.Sprintf("%+v", *response)
}

func (p *Pipeline) saveTranscript(ctx context.Context, result models.ChatResult, query string) {
	entry := store.Entry{
		ID:        result.RequestID,
		Domain:    result.Domain,
		Query:     query,
		Outcome:   result.Outcome,
		Reply:     result.Reply,
		CreatedAt: result.CreatedAt,
	}
	if err := p.transcripts.Save(ctx, entry); err != nil {
		p.logger.Warn().
			Err(err).
			Str("request_id", result.RequestID).
			Msg("failed to save transcript")
	}
}

func rejectionOutcome(checkName string) models.Outcome {
	if checkName == models.CheckHandrail {
		return models.OutcomeHandrailRejected
	}
	return models.OutcomeGuardrailRejected
}
