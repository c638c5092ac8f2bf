package taxonomy

import "fmt"

// Classification maps every category to a confidence in [0,1].
// Produced per query, consumed by the safety gate, never persisted.
type Classification map[Category]float64

// Validate checks the contract the safety gate relies on: every category
// of the closed set present, every score in [0,1].
func (c Classification) Validate() error {
	if len(c) != len(AllCategories) {
		return fmt.Errorf("classification has %d categories, want %d", len(c), len(AllCategories))
	}
	for _, cat := range AllCategories {
		score, ok := c[cat]
		if !ok {
			return fmt.Errorf("classification missing category %q", cat)
		}
		if score < 0 || score > 1 {
			return fmt.Errorf("classification score %f for %q out of [0,1]", score, cat)
		}
	}
	return nil
}

// Top returns the category with the highest confidence and its score.
// Ties resolve in AllCategories order so results stay deterministic.
func (c Classification) Top() (Category, float64) {
	best := CategoryOutOfScope
	bestScore := -1.0
	for _, cat := range AllCategories {
		if score := c[cat]; score > bestScore {
			best = cat
			bestScore = score
		}
	}
	return best, bestScore
}
