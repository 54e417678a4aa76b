package deck

import "fmt"

// ConfigurationError reports a board size or catalog that cannot produce a game.
type ConfigurationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ConfigurationError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("invalid %s %d: catalog cannot supply a board", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %d: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// ValidatePairCount checks pairCount against [min, max] and the catalog size.
// The effective upper bound is the smaller of max and catalogSize.
func ValidatePairCount(pairCount, min, max, catalogSize int) error {
	upper := max
	if catalogSize < upper {
		upper = catalogSize
	}
	if pairCount < min || pairCount > upper {
		return &ConfigurationError{Field: "pair count", Value: pairCount, Min: min, Max: upper}
	}
	return nil
}
