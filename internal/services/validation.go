package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Difficulty is validated as its own rule so the message can name the
	// field instead of reporting a generic oneof failure.
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return entities.Difficulty(fl.Field().String()).Valid()
	})
	return v
}

// vocabularyRules mirrors the fields a well-formed entry must carry.
type vocabularyRules struct {
	ID                 string `validate:"required"`
	Word               string `validate:"required"`
	Definition         string `validate:"required"`
	Example            string `validate:"required"`
	ExampleTranslation string `validate:"required"`
	Difficulty         string `validate:"required,difficulty"`
}

var ruleMessages = map[string]string{
	"ID":                 "missing id",
	"Word":               "missing word",
	"Definition":         "missing definition",
	"Example":            "missing example",
	"ExampleTranslation": "missing example translation",
	"Difficulty":         "invalid difficulty level",
}

// validateVocabulary returns one positional message per broken rule. The
// index is zero-based; messages are one-based to match user expectations.
func validateVocabulary(v *entities.Vocabulary, index int) []string {
	rules := vocabularyRules{
		ID:                 v.ID,
		Word:               v.Word,
		Definition:         v.Definition,
		Example:            v.Example,
		ExampleTranslation: v.ExampleTranslation,
		Difficulty:         string(v.Difficulty),
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}
	var errs []string
	for _, fe := range err.(validator.ValidationErrors) {
		msg, ok := ruleMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("invalid %s", fe.Field())
		}
		errs = append(errs, fmt.Sprintf("vocabulary %d: %s", index+1, msg))
	}
	return errs
}

// ValidationResult reports a full dataset scan. Errors are positional,
// human-readable strings.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateData scans every stored entry and collects rule violations.
// The scan itself never fails; an unreadable store reports as a single
// validation error.
func (s *ImportService) ValidateData(ctx context.Context) *ValidationResult {
	vocabularies, err := s.storage.GetVocabularies(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("validation scan failed")
		return &ValidationResult{
			IsValid: false,
			Errors:  []string{"failed to read vocabulary data"},
		}
	}

	var errs []string
	for i := range vocabularies {
		errs = append(errs, validateVocabulary(&vocabularies[i], i)...)
	}
	return &ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
