package models

import (
	"time"
)

type Verdict string

const (
	VerdictPass   Verdict = "pass"
	VerdictReject Verdict = "reject"
)

// Check names are stable identifiers; the pipeline maps them to outcomes.
const (
	CheckGuardrail = "guardrail"
	CheckHandrail  = "handrail"
)

// CheckResult is one pre-dispatch check's output.
type CheckResult struct {
	Name     string        `json:"name"`
	Verdict  Verdict       `json:"verdict"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

type Outcome string

const (
	OutcomeGuardrailRejected Outcome = "guardrail_rejected"
	OutcomeHandrailRejected  Outcome = "handrail_rejected"
	OutcomeAnswered          Outcome = "answered"
)

// ChatResult is the pipeline's reply to a single user message. Exactly one of
// the three outcomes is produced per message.
type ChatResult struct {
	RequestID string    `json:"request_id"`
	Domain    string    `json:"domain"`
	Outcome   Outcome   `json:"outcome"`
	Reply     string    `json:"reply"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
