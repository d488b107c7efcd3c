package model

// Variant identifies one of the supported board configurations
type Variant string

const (
	// VariantClassic is the 4x4 board with letter dice only
	VariantClassic Variant = "classic"
	// VariantBig is the 5x5 board with one QU digraph die
	VariantBig Variant = "big"
	// VariantSuper is the 6x6 board with one QU digraph die, one blank die
	// and per-letter scoring for long words
	VariantSuper Variant = "super"
)

// VariantConfig carries the per-variant constants: grid size, special-die
// composition and scoring rules
type VariantConfig struct {
	GridSize     int
	DigraphText  string // face text of the digraph die, empty if none
	DigraphCount int
	BlankCount   int
	Rules        ScoringRules
}

// standardTiers is the tier table shared by every variant:
// 3-4 letters score 1, 5 scores 2, 6 scores 3, 7 scores 5, 8+ score 11
var standardTiers = []ScoringTier{
	{MinLength: 3, Points: 1},
	{MinLength: 5, Points: 2},
	{MinLength: 6, Points: 3},
	{MinLength: 7, Points: 5},
	{MinLength: 8, Points: 11},
}

// ParseVariant validates a variant name
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantClassic, VariantBig, VariantSuper:
		return Variant(s), nil
	default:
		return "", ErrInvalidVariant
	}
}

// Config returns the configuration for this variant
func (v Variant) Config() (VariantConfig, error) {
	switch v {
	case VariantClassic:
		return VariantConfig{
			GridSize: 4,
			Rules:    ScoringRules{Tiers: standardTiers},
		}, nil
	case VariantBig:
		return VariantConfig{
			GridSize:     5,
			DigraphText:  "QU",
			DigraphCount: 1,
			Rules:        ScoringRules{Tiers: standardTiers},
		}, nil
	case VariantSuper:
		return VariantConfig{
			GridSize:     6,
			DigraphText:  "QU",
			DigraphCount: 1,
			BlankCount:   1,
			Rules: ScoringRules{
				Tiers:               standardTiers,
				UsePerLetterScoring: true,
				PerLetterMultiplier: 2,
				PerLetterMinLength:  9,
			},
		}, nil
	default:
		return VariantConfig{}, ErrInvalidVariant
	}
}
