package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func TestBMITool(t *testing.T) {
	tool := NewBMITool()

	tests := []struct {
		name string
		args string
		want string
	}{
		{
			name: "normal",
			args: `{"weight": 70, "height": 1.75}`,
			want: "⚕️ Your BMI is 22.9 (Normal).",
		},
		{
			name: "underweight",
			args: `{"weight": 45, "height": 1.75}`,
			want: "⚕️ Your BMI is 14.7 (Underweight).",
		},
		{
			name: "overweight",
			args: `{"weight": 85, "height": 1.75}`,
			want: "⚕️ Your BMI is 27.8 (Overweight).",
		},
		{
			name: "obese",
			args: `{"weight": 100, "height": 1.70}`,
			want: "⚕️ Your BMI is 34.6 (Obese).",
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

func TestBMITool_InvalidArgs(t *testing.T) {
	tool := NewBMITool()

	if _, err := tool.Invoke(context.Background(), json.RawMessage(`{"weight": 70, "height": 0}`)); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := tool.Invoke(context.Background(), json.RawMessage(`{"weight": 70, "height": -1.75}`)); err == nil {
		t.Error("expected error for negative height")
	}
	if _, err := tool.Invoke(context.Background(), json.RawMessage(`{`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
