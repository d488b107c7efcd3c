package scoring

import (
	"github.com/dkahl/bogglegame-go/internal/model"
)

// Service maps word lengths to points under a variant's scoring rules
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Points returns the score for a word of the given length. Lengths below
// the first tier score 0. When per-letter scoring is enabled and the length
// meets its threshold, the formula strictly overrides tier lookup, even if
// a tier would also apply at that length. Otherwise the tier with the
// greatest MinLength not exceeding the length applies.
//
// Word length is the literal character count of the submitted word,
// independent of how many board cells were used to trace it.
func (s *Service) Points(wordLength int, rules model.ScoringRules) int {
	if len(rules.Tiers) == 0 || wordLength < rules.Tiers[0].MinLength {
		return 0
	}

	if rules.UsePerLetterScoring && wordLength >= rules.PerLetterMinLength {
		return wordLength * rules.PerLetterMultiplier
	}

	points := 0
	for _, tier := range rules.Tiers {
		if wordLength < tier.MinLength {
			break
		}
		points = tier.Points
	}
	return points
}

// Interface for dependency injection
type ServiceInterface interface {
	Points(wordLength int, rules model.ScoringRules) int
}

var _ ServiceInterface = (*Service)(nil)
