package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// ChatClient is an interface for one round of a tool-augmented conversation
// with a hosted model. Implementations are free of shared mutable state so a
// single client can serve concurrent invocations.
//
// This allows mocking in tests without making real API calls.
type ChatClient interface {
	Converse(ctx context.Context, request ChatRequest) (*ChatResponse, error)
	ConverseWithRetry(ctx context.Context, request ChatRequest) (*ChatResponse, error)
	ModelID() string
}
