package llm

import "fmt"

// Assessment stages used in AssessmentError
const (
	StageGenerate = "generate"
	StageParse    = "parse"
	StageValidate = "validate"
)

// AssessmentError describes a failed external match assessment. The engine
// inspects Stage when reporting why it fell back to local scoring.
type AssessmentError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *AssessmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assessment %s failed: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("assessment %s failed: %s", e.Stage, e.Message)
}

func (e *AssessmentError) Unwrap() error {
	return e.Cause
}
