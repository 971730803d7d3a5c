// Package searchterm classifies a free-text search term into the single
// lookup strategy the user directory should run for it.
package searchterm

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Strategy selects which user attribute a term resolves against.
type Strategy int

const (
	// StrategyNone marks a term no lookup can resolve. Purely numeric
	// terms land here: they are not ids, and the email and name paths
	// never match them, so callers report not-found.
	StrategyNone Strategy = iota
	StrategyID
	StrategyEmail
	StrategyName
)

func (s Strategy) String() string {
	switch s {
	case StrategyID:
		return "id"
	case StrategyEmail:
		return "email"
	case StrategyName:
		return "name"
	default:
		return "none"
	}
}

var validate = validator.New()

// Classify maps term to exactly one strategy. The checks are ordered and the
// order is load-bearing: id wins over everything, the numeric check runs
// before the email check so "123" never falls into the name path, and the
// name path is the final catch-all (exact, case-sensitive match).
func Classify(term string) Strategy {
	if isCanonicalUUID(term) {
		return StrategyID
	}
	if isNumeric(term) {
		return StrategyNone
	}
	if validate.Var(term, "email") == nil {
		return StrategyEmail
	}
	return StrategyName
}

// isCanonicalUUID accepts only the hyphenated 36-character form, not the
// alternate encodings uuid.Parse tolerates.
func isCanonicalUUID(term string) bool {
	if len(term) != 36 {
		return false
	}
	_, err := uuid.Parse(term)
	return err == nil
}

// isNumeric treats the empty string as numeric, the same way JS coerces
// "" to 0, so a blank term is unresolvable rather than a name lookup.
func isNumeric(term string) bool {
	if term == "" {
		return true
	}
	_, err := strconv.ParseFloat(term, 64)
	return err == nil
}
