package models

// ValidationResult is the structured outcome of the data-quality checks.
// Errors are hard invariant violations; warnings record statistical drift
// beyond tolerance and never fail a run.
type ValidationResult struct {
	IsValid  bool           `json:"is_valid"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`
	Stats    map[string]any `json:"stats"`
}

// NewValidationResult returns an empty result ready for checks to append to.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
		Stats:    make(map[string]any),
	}
}

// AddError records a hard invariant violation.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning records statistical drift for operator review.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Finalize sets IsValid from the accumulated errors. Call after all checks ran.
func (r *ValidationResult) Finalize() {
	r.IsValid = len(r.Errors) == 0
}
