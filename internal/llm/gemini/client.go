package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/farhanashraf/domain-assistants/internal/llm"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Client talks to Gemini through its OpenAI-compatible chat completions
// endpoint.
type Client struct {
	APIKey       string
	BaseURL      string
	Model        string
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	httpDo       *http.Client
}

func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Client{
		APIKey:       apiKey,
		BaseURL:      baseURL,
		Model:        model,
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     8 * time.Second,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

func (c *Client) ModelID() string {
	return c.Model
}

type chatMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	Name       string         `json:"name,omitempty"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type wireTool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		Parameters  json.RawMessage `json:"parameters,omitempty"`
	} `json:"function"`
}

type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Tools       []wireTool    `json:"tools,omitempty"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role      string         `json:"role"`
		Content   string         `json:"content"`
		ToolCalls []wireToolCall `json:"tool_calls"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

func (c *Client) Converse(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	payload := chatCompletionsRequest{
		Model:       c.Model,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	}

	if request.Instructions != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: request.Instructions})
	}
	for _, msg := range request.Messages {
		payload.Messages = append(payload.Messages, toWireMessage(msg))
	}
	for _, spec := range request.Tools {
		var t wireTool
		t.Type = "function"
		t.Function.Name = spec.Name
		t.Function.Description = spec.Description
		t.Function.Parameters = spec.Schema
		payload.Tools = append(payload.Tools, t)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize gemini request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gemini model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out chatCompletionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini response: %w", err)
	}

	response := &llm.ChatResponse{Raw: body}
	if len(out.Choices) == 0 {
		// Unexpected but not fatal: the caller falls back to the raw payload.
		return response, nil
	}

	choice := out.Choices[0]
	response.Text = choice.Message.Content
	response.StopReason = choice.FinishReason
	for _, call := range choice.Message.ToolCalls {
		response.ToolCalls = append(response.ToolCalls, llm.ToolCall{
			ID:   call.ID,
			Name: call.Function.Name,
			Args: json.RawMessage(call.Function.Arguments),
		})
	}

	return response, nil
}

func (c *Client) ConverseWithRetry(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	var lastErr error

	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		response, err := c.Converse(ctx, request)
		if err == nil {
			return response, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, fmt.Errorf("non-retryable error: %w", err)
		}

		delay := calculateBackoff(attempt, c.InitialDelay, c.MaxDelay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			continue
		}
	}

	return nil, fmt.Errorf("max retries %d exceeded: %w", c.MaxRetries, lastErr)
}

func toWireMessage(msg llm.Message) chatMessage {
	out := chatMessage{
		Role:    string(msg.Role),
		Content: msg.Content,
	}
	if msg.Role == llm.RoleTool {
		out.ToolCallID = msg.ToolCallID
		out.Name = msg.ToolName
	}
	for _, call := range msg.ToolCalls {
		var w wireToolCall
		w.ID = call.ID
		w.Type = "function"
		w.Function.Name = call.Name
		w.Function.Arguments = string(call.Args)
		out.ToolCalls = append(out.ToolCalls, w)
	}
	return out
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Rate limiting
	if strings.Contains(errStr, "http 429") || strings.Contains(errStr, "RESOURCE_EXHAUSTED") {
		return true
	}

	// Service errors (5xx)
	if strings.Contains(errStr, "http 500") ||
		strings.Contains(errStr, "http 502") ||
		strings.Contains(errStr, "http 503") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "EOF") ||
		strings.Contains(errStr, "timeout") {
		return true
	}

	return false
}

func calculateBackoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := float64(initialDelay) * math.Pow(2, float64(attempt))

	if backoff > float64(maxDelay) {
		backoff = float64(maxDelay)
	}

	jitter := backoff * 0.2 * (2*rand.Float64() - 1) // Random value between -20% and +20%
	backoff += jitter

	return time.Duration(backoff)
}
