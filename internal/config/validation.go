package config

// Validate checks cfg for values no component can work with. It
// returns *ValidationErrors carrying every problem found, or nil.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.Lint.WordBudget <= 0 {
		errs = append(errs, ValidationError{
			Field:   "lint.word_budget",
			Message: "must be a positive word count",
			Value:   cfg.Lint.WordBudget,
			Wrapped: ErrInvalidConfig,
		})
	}
	if cfg.Trigger.MaxSuggestions <= 0 {
		errs = append(errs, ValidationError{
			Field:   "trigger.max_suggestions",
			Message: "must be positive",
			Value:   cfg.Trigger.MaxSuggestions,
			Wrapped: ErrInvalidConfig,
		})
	}
	if cfg.Trigger.RulesPath == "" {
		errs = append(errs, ValidationError{
			Field:   "trigger.rules_path",
			Message: "must not be empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	if !IsValidOutputFormat(cfg.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: "unrecognized format",
			Value:   cfg.Output.Format,
			Wrapped: ErrInvalidFormat,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
