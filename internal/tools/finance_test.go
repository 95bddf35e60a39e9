package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func TestInvestmentReturnTool(t *testing.T) {
	tool := NewInvestmentReturnTool()

	tests := []struct {
		name string
		args string
		want string
	}{
		{
			name: "compound growth",
			args: `{"principal": 1000, "rate": 5, "years": 10}`,
			want: "📈 Future Value after 10 years: $1628.89",
		},
		{
			name: "zero years returns the principal",
			args: `{"principal": 500, "rate": 7, "years": 0}`,
			want: "📈 Future Value after 0 years: $500.00",
		},
		{
			name: "zero rate",
			args: `{"principal": 1000, "rate": 0, "years": 3}`,
			want: "📈 Future Value after 3 years: $1000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.Invoke(context.Background(), json.RawMessage(tt.args))
			if err != nil {
				t.Fatalf("Invoke failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvestmentReturnTool_InvalidArgs(t *testing.T) {
	tool := NewInvestmentReturnTool()

	if _, err := tool.Invoke(context.Background(), json.RawMessage(`{"principal": "much"}`)); err == nil {
		t.Error("expected error for non-numeric principal")
	}
	if _, err := tool.Invoke(context.Background(), json.RawMessage(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
