package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/farhanashraf/domain-assistants/internal/assistant"
	"github.com/farhanashraf/domain-assistants/internal/config"
	"github.com/farhanashraf/domain-assistants/internal/llm"
	"github.com/farhanashraf/domain-assistants/internal/llm/mocks"
	"github.com/farhanashraf/domain-assistants/internal/models"
	"github.com/farhanashraf/domain-assistants/internal/store"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func financeAssistant(t *testing.T) *assistant.Assistant {
	t.Helper()
	registry, err := assistant.Build(config.Defaults())
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	asst, ok := registry.Get("finance")
	if !ok {
		t.Fatal("finance assistant missing")
	}
	return asst
}

// recordingStore captures transcript entries for assertions.
type recordingStore struct {
	entries []store.Entry
}

func (r *recordingStore) Save(ctx context.Context, entry store.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func TestPipeline_GuardrailRejection_NoModelCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations set: any model call fails the test.
	mockClient := mocks.NewMockChatClient(ctrl)
	transcripts := &recordingStore{}
	pipeline := NewPipeline(mockClient, transcripts, 0, newTestLogger())

	result, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "is this coin a scam?")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	if result.Outcome != models.OutcomeGuardrailRejected {
		t.Errorf("Outcome: %v, want %v", result.Outcome, models.OutcomeGuardrailRejected)
	}
	if result.Reply != "⚠️ Unsafe query detected." {
		t.Errorf("Reply: %q", result.Reply)
	}
	if result.RequestID == "" {
		t.Error("expected a request ID")
	}
	if len(transcripts.entries) != 1 || transcripts.entries[0].Outcome != models.OutcomeGuardrailRejected {
		t.Errorf("transcript entries: %+v", transcripts.entries)
	}
}

func TestPipeline_HandrailRejection_NoModelCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockChatClient(ctrl)
	pipeline := NewPipeline(mockClient, nil, 0, newTestLogger())

	result, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "hi")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	if result.Outcome != models.OutcomeHandrailRejected {
		t.Errorf("Outcome: %v, want %v", result.Outcome, models.OutcomeHandrailRejected)
	}
	if result.Reply != "🤔 Please provide more details about your financial question." {
		t.Errorf("Reply: %q", result.Reply)
	}
}

// A query that is both too short and banned gets the guardrail message.
func TestPipeline_GuardrailBeforeHandrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockChatClient(ctrl)
	pipeline := NewPipeline(mockClient, nil, 0, newTestLogger())

	result, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "scam")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	if result.Outcome != models.OutcomeGuardrailRejected {
		t.Errorf("Outcome: %v, want %v", result.Outcome, models.OutcomeGuardrailRejected)
	}
}

func TestPipeline_Answered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asst := financeAssistant(t)
	mockClient := mocks.NewMockChatClient(ctrl)
	mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
			if request.Instructions != asst.Instructions() {
				t.Errorf("Instructions: %q", request.Instructions)
			}
			if len(request.Messages) != 1 || request.Messages[0].Role != llm.RoleUser {
				t.Errorf("Messages: %+v", request.Messages)
			}
			if len(request.Tools) != 1 || request.Tools[0].Name != "calculate_investment_return" {
				t.Errorf("Tools: %+v", request.Tools)
			}
			return &llm.ChatResponse{Text: "Index funds spread risk across the whole market.", StopReason: "stop"}, nil
		}).
		Times(1)
	mockClient.EXPECT().ModelID().Return("gemini-2.5-flash")

	transcripts := &recordingStore{}
	pipeline := NewPipeline(mockClient, transcripts, 0, newTestLogger())

	result, err := pipeline.HandleMessage(context.Background(), asst, "How do index funds work?")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	if result.Outcome != models.OutcomeAnswered {
		t.Errorf("Outcome: %v", result.Outcome)
	}
	if result.Reply != "Index funds spread risk across the whole market." {
		t.Errorf("Reply: %q", result.Reply)
	}
	if result.Model != "gemini-2.5-flash" {
		t.Errorf("Model: %q", result.Model)
	}
	if len(transcripts.entries) != 1 || transcripts.entries[0].Outcome != models.OutcomeAnswered {
		t.Errorf("transcript entries: %+v", transcripts.entries)
	}
}

func TestPipeline_ToolCallLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asst := financeAssistant(t)
	mockClient := mocks.NewMockChatClient(ctrl)

	first := mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		Return(&llm.ChatResponse{
			ToolCalls: []llm.ToolCall{{
				ID:   "call_1",
				Name: "calculate_investment_return",
				Args: []byte(`{"principal": 1000, "rate": 5, "years": 10}`),
			}},
			StopReason: "tool_calls",
		}, nil)

	mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
			// user, assistant tool call, tool result
			if len(request.Messages) != 3 {
				t.Fatalf("expected 3 messages, got %d", len(request.Messages))
			}
			toolMsg := request.Messages[2]
			if toolMsg.Role != llm.RoleTool || toolMsg.ToolCallID != "call_1" {
				t.Errorf("tool message: %+v", toolMsg)
			}
			if toolMsg.Content != "📈 Future Value after 10 years: $1628.89" {
				t.Errorf("tool result: %q", toolMsg.Content)
			}
			return &llm.ChatResponse{Text: "Your investment would grow to $1628.89.", StopReason: "stop"}, nil
		})
	mockClient.EXPECT().ModelID().Return("gemini-2.5-flash")

	pipeline := NewPipeline(mockClient, nil, 0, newTestLogger())

	result, err := pipeline.HandleMessage(context.Background(), asst, "What would 1000 at 5% become after 10 years?")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if result.Reply != "Your investment would grow to $1628.89." {
		t.Errorf("Reply: %q", result.Reply)
	}
}

func TestPipeline_UnknownToolFedBackAsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockChatClient(ctrl)

	first := mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		Return(&llm.ChatResponse{
			ToolCalls: []llm.ToolCall{{ID: "call_1", Name: "no_such_tool", Args: []byte(`{}`)}},
		}, nil)

	mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
			toolMsg := request.Messages[len(request.Messages)-1]
			if !strings.HasPrefix(toolMsg.Content, "tool error:") {
				t.Errorf("tool result: %q", toolMsg.Content)
			}
			return &llm.ChatResponse{Text: "I could not run that calculation."}, nil
		})
	mockClient.EXPECT().ModelID().Return("gemini-2.5-flash")

	pipeline := NewPipeline(mockClient, nil, 0, newTestLogger())

	if _, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "compute something odd"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
}

func TestPipeline_RawFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "extracts text from a chat completions payload",
			raw:  `{"choices":[{"message":{"content":"recovered answer"}}]}`,
			want: "recovered answer",
		},
		{
			name: "extracts text from an anthropic payload",
			raw:  `{"content":[{"type":"text","text":"recovered answer"}]}`,
			want: "recovered answer",
		},
		{
			name: "falls back to the raw payload string",
			raw:  `{"unexpected": true}`,
			want: `{"unexpected": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockChatClient(ctrl)
			mockClient.EXPECT().
				Converse(gomock.Any(), gomock.Any()).
				Return(&llm.ChatResponse{Raw: []byte(tt.raw)}, nil)
			mockClient.EXPECT().ModelID().Return("gemini-2.5-flash")

			pipeline := NewPipeline(mockClient, nil, 0, newTestLogger())

			result, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "How do index funds work?")
			if err != nil {
				t.Fatalf("HandleMessage failed: %v", err)
			}
			if result.Reply != tt.want {
				t.Errorf("Reply: %q, want %q", result.Reply, tt.want)
			}
		})
	}
}

func TestPipeline_ModelErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockChatClient(ctrl)
	mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service unavailable"))

	pipeline := NewPipeline(mockClient, nil, 0, newTestLogger())

	_, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "How do index funds work?")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "service unavailable") {
		t.Errorf("error: %v", err)
	}
}

func TestPipeline_MaxToolRoundsExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockChatClient(ctrl)
	mockClient.EXPECT().
		Converse(gomock.Any(), gomock.Any()).
		Return(&llm.ChatResponse{
			ToolCalls: []llm.ToolCall{{ID: "call_1", Name: "calculate_investment_return", Args: []byte(`{"principal":1,"rate":1,"years":1}`)}},
		}, nil).
		Times(2)

	pipeline := NewPipeline(mockClient, nil, 2, newTestLogger())

	_, err := pipeline.HandleMessage(context.Background(), financeAssistant(t), "keep calling tools forever")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "tool rounds") {
		t.Errorf("error: %v", err)
	}
}
