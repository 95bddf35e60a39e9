package checks

import (
	"github.com/farhanashraf/domain-assistants/internal/models"
)

// Runner evaluates checkers sequentially in registration order and stops at
// the first rejection. Order is a contract: the guardrail must run before the
// handrail, so a query that is both unsafe and too short gets the guardrail
// message.
type Runner struct {
	checkers []Checker
}

func NewRunner(checkers []Checker) *Runner {
	return &Runner{checkers: checkers}
}

// Run returns the first rejecting check result, or nil when every check passes.
func (r *Runner) Run(query string) *models.CheckResult {
	for _, checker := range r.checkers {
		result := checker.Check(query)
		if result.Verdict == models.VerdictReject {
			return &result
		}
	}
	return nil
}
