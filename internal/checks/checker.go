package checks

import (
	"github.com/farhanashraf/domain-assistants/internal/models"
)

// Checker is a pure pre-dispatch filter. A Reject verdict stops the pipeline
// before any model call.
type Checker interface {
	Check(query string) models.CheckResult
}
