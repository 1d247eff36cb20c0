package meta

import "fmt"

// Strategy selects the form of the segment automaton driven during search.
type Strategy int

const (
	// UseFlat drives the completed automaton flattened into a single
	// transition table. It is the fastest form and the default.
	UseFlat Strategy = iota

	// UseCompleted drives the completed automaton: one lookup per byte,
	// one row of 256 transitions per state.
	UseCompleted

	// UseFailureLinks drives the trie directly, chasing failure links on
	// mismatch. It builds fastest and uses the least memory.
	UseFailureLinks
)

// String returns the name of the strategy as accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case UseFlat:
		return "flat"
	case UseCompleted:
		return "completed"
	case UseFailureLinks:
		return "failure"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy returns the strategy named name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "flat":
		return UseFlat, nil
	case "completed":
		return UseCompleted, nil
	case "failure":
		return UseFailureLinks, nil
	default:
		return 0, &ConfigError{Field: "Strategy", Message: fmt.Sprintf("unknown strategy %q", name)}
	}
}

func (s Strategy) valid() bool {
	return s >= UseFlat && s <= UseFailureLinks
}
