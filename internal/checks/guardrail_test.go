package checks

import (
	"testing"

	"github.com/farhanashraf/domain-assistants/internal/config"
	"github.com/farhanashraf/domain-assistants/internal/models"
)

func financePhrases() []config.BannedPhrase {
	return []config.BannedPhrase{
		{Phrase: "guaranteed profit", Message: "⚠️ I cannot provide guaranteed financial advice."},
		{Phrase: "fraud", Message: "⚠️ Unsafe query detected."},
		{Phrase: "scam", Message: "⚠️ Unsafe query detected."},
	}
}

func TestGuardrailChecker(t *testing.T) {
	tests := []struct {
		name        string
		phrases     []config.BannedPhrase
		query       string
		wantVerdict models.Verdict
		wantMessage string
	}{
		{
			name:        "clean query passes",
			phrases:     financePhrases(),
			query:       "How should I diversify my portfolio?",
			wantVerdict: models.VerdictPass,
		},
		{
			name:        "banned phrase rejects",
			phrases:     financePhrases(),
			query:       "Tell me about a guaranteed profit scheme",
			wantVerdict: models.VerdictReject,
			wantMessage: "⚠️ I cannot provide guaranteed financial advice.",
		},
		{
			name:        "matching is case-insensitive",
			phrases:     financePhrases(),
			query:       "Is this a SCAM?",
			wantVerdict: models.VerdictReject,
			wantMessage: "⚠️ Unsafe query detected.",
		},
		{
			name:        "substring match inside a word",
			phrases:     financePhrases(),
			query:       "what is fraudulent behavior",
			wantVerdict: models.VerdictReject,
			wantMessage: "⚠️ Unsafe query detected.",
		},
		{
			name:        "first matching phrase wins",
			phrases:     financePhrases(),
			query:       "guaranteed profit or a scam?",
			wantVerdict: models.VerdictReject,
			wantMessage: "⚠️ I cannot provide guaranteed financial advice.",
		},
		{
			name: "health phrases",
			phrases: []config.BannedPhrase{
				{Phrase: "self-harm", Message: "⚠️ This may be an emergency. Please consult a professional immediately."},
				{Phrase: "emergency", Message: "⚠️ This may be an emergency. Please consult a professional immediately."},
			},
			query:       "I have an Emergency",
			wantVerdict: models.VerdictReject,
			wantMessage: "⚠️ This may be an emergency. Please consult a professional immediately.",
		},
		{
			name: "travel phrases",
			phrases: []config.BannedPhrase{
				{Phrase: "illegal", Message: "⚠️ Cannot provide information on illegal activities."},
			},
			query:       "how to bring illegal goods through customs",
			wantVerdict: models.VerdictReject,
			wantMessage: "⚠️ Cannot provide information on illegal activities.",
		},
		{
			name:        "empty query passes",
			phrases:     financePhrases(),
			query:       "",
			wantVerdict: models.VerdictPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewGuardrailChecker(tt.phrases)

			got := checker.Check(tt.query)
			if got.Name != models.CheckGuardrail {
				t.Errorf("Name: %q, want %q", got.Name, models.CheckGuardrail)
			}
			if got.Verdict != tt.wantVerdict {
				t.Errorf("Verdict: %v, want %v", got.Verdict, tt.wantVerdict)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message: %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestGuardrailChecker_Pure(t *testing.T) {
	checker := NewGuardrailChecker(financePhrases())

	first := checker.Check("is this a scam?")
	second := checker.Check("is this a scam?")

	if first.Verdict != second.Verdict || first.Message != second.Message {
		t.Errorf("repeated checks differ: %+v vs %+v", first, second)
	}
}
