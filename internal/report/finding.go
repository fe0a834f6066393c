// Package report defines validation findings, the per-validator result
// accumulator, and the aggregate report rendered for humans or emitted
// as JSON.
package report

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityPassed  Severity = "passed"
)

// Finding is one reported check outcome.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message"`
	File     string   `json:"file,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}

// Result accumulates ordered findings for one validator run. The three
// sequences are append-only; insertion order is preserved through
// aggregation and rendering.
type Result struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Passed   []Finding `json:"passed"`

	// Absent marks a validator whose target directory does not exist.
	// An absent target is a passed state, kept distinct so callers can
	// tell "nothing to validate" from "validated clean".
	Absent bool `json:"absent,omitempty"`
}

// NewResult returns an empty accumulator.
func NewResult() *Result {
	return &Result{}
}

// AddError records an error finding. file may be empty for findings not
// tied to one path.
func (r *Result) AddError(code, file, message string) {
	r.Errors = append(r.Errors, Finding{Severity: SeverityError, Code: code, File: file, Message: message})
}

// AddWarning records a warning finding.
func (r *Result) AddWarning(code, file, message string) {
	r.Warnings = append(r.Warnings, Finding{Severity: SeverityWarning, Code: code, File: file, Message: message})
}

// AddWarningHint records a warning finding carrying a remediation hint.
func (r *Result) AddWarningHint(code, file, message, hint string) {
	r.Warnings = append(r.Warnings, Finding{Severity: SeverityWarning, Code: code, File: file, Message: message, Hint: hint})
}

// AddPass records a passed check.
func (r *Result) AddPass(message string) {
	r.Passed = append(r.Passed, Finding{Severity: SeverityPassed, Message: message})
}

// Merge appends other's findings after r's, preserving both orders.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Passed = append(r.Passed, other.Passed...)
}

// HasErrors reports whether any error finding was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Status is the derived overall state of a result.
type Status string

const (
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusPass Status = "pass"
)

// Status derives the overall state: any error forces fail regardless of
// warning count, warnings alone yield warn, otherwise pass.
func (r *Result) Status() Status {
	switch {
	case len(r.Errors) > 0:
		return StatusFail
	case len(r.Warnings) > 0:
		return StatusWarn
	default:
		return StatusPass
	}
}
