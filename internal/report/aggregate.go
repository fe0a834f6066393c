package report

import "github.com/google/uuid"

// Aggregate concatenates each input's errors, warnings, and passed
// sequences in call order. No deduplication, no re-sorting: two inputs
// carrying identical findings produce both copies, in order.
func Aggregate(results ...*Result) *Result {
	out := NewResult()
	for _, r := range results {
		out.Merge(r)
	}
	return out
}

// Summary is the serializable form of an aggregated result, tagged with
// a unique run identifier so CI logs can be correlated across steps.
type Summary struct {
	RunID    string    `json:"run_id"`
	Root     string    `json:"root,omitempty"`
	Status   Status    `json:"status"`
	Counts   Counts    `json:"counts"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Passed   []Finding `json:"passed"`
}

// Counts holds the per-severity finding totals.
type Counts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Passed   int `json:"passed"`
}

// NewSummary wraps an aggregated result for serialization.
func NewSummary(root string, r *Result) Summary {
	return Summary{
		RunID:  uuid.NewString(),
		Root:   root,
		Status: r.Status(),
		Counts: Counts{
			Errors:   len(r.Errors),
			Warnings: len(r.Warnings),
			Passed:   len(r.Passed),
		},
		Errors:   r.Errors,
		Warnings: r.Warnings,
		Passed:   r.Passed,
	}
}
