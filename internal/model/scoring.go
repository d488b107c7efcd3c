package model

// ScoringTier is one scoring bracket: Points applies to every word length
// from MinLength up to (exclusive) the next tier's MinLength
type ScoringTier struct {
	MinLength int `json:"min_length"`
	Points    int `json:"points"`
}

// ScoringRules is an ordered tier table plus an optional per-letter formula
// that overrides tier lookup at or above PerLetterMinLength
type ScoringRules struct {
	Tiers               []ScoringTier `json:"tiers"`
	UsePerLetterScoring bool          `json:"use_per_letter_scoring"`
	PerLetterMultiplier int           `json:"per_letter_multiplier,omitempty"`
	PerLetterMinLength  int           `json:"per_letter_min_length,omitempty"`
}

// Validate checks the structural invariants: non-empty tiers, MinLength >= 3,
// Points >= 0, strictly ascending MinLength, and a positive multiplier and
// threshold when per-letter scoring is enabled
func (r ScoringRules) Validate() error {
	if len(r.Tiers) == 0 {
		return ErrInvalidScoringRules
	}
	prev := 0
	for _, tier := range r.Tiers {
		if tier.MinLength < 3 || tier.Points < 0 {
			return ErrInvalidScoringRules
		}
		if tier.MinLength <= prev {
			return ErrInvalidScoringRules
		}
		prev = tier.MinLength
	}
	if r.UsePerLetterScoring && (r.PerLetterMultiplier <= 0 || r.PerLetterMinLength < 3) {
		return ErrInvalidScoringRules
	}
	return nil
}
