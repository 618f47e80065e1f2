package punctuation

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// DefaultRemovable is stripped from anywhere in a token.
	DefaultRemovable = `.,!?;:"()[]{}…“”«»`
	// DefaultStructural survives stripping but still disqualifies a token.
	DefaultStructural = `'-`
)

// Rules is the default punctuation policy.
//
// Strip deletes every Removable rune. HasDisallowed is true for an empty
// token, for any Structural rune, and for any remaining Unicode punctuation
// or symbol, since dictionary entries never contain punctuation.
type Rules struct {
	removable  map[rune]struct{}
	structural map[rune]struct{}
}

var _ Classifier = (*Rules)(nil)

// NewRules builds a policy from the given rune sets. A rune may not be both
// removable and structural.
func NewRules(removable, structural string) (*Rules, error) {
	r := &Rules{
		removable:  runeSet(removable),
		structural: runeSet(structural),
	}
	for ch := range r.structural {
		if _, ok := r.removable[ch]; ok {
			return nil, fmt.Errorf("punctuation %q is both removable and structural", ch)
		}
	}
	return r, nil
}

// DefaultRules returns the policy built from DefaultRemovable and
// DefaultStructural.
func DefaultRules() *Rules {
	r, err := NewRules(DefaultRemovable, DefaultStructural)
	if err != nil {
		panic(err) // defaults are disjoint
	}
	return r
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, ch := range s {
		set[ch] = struct{}{}
	}
	return set
}

// Strip removes every removable rune from token.
func (r *Rules) Strip(token string) string {
	if !strings.ContainsFunc(token, r.isRemovable) {
		return token
	}
	return strings.Map(func(ch rune) rune {
		if r.isRemovable(ch) {
			return -1
		}
		return ch
	}, token)
}

// HasDisallowed reports whether token is empty or still contains
// punctuation after stripping.
func (r *Rules) HasDisallowed(token string) bool {
	if token == "" {
		return true
	}
	return strings.ContainsFunc(token, func(ch rune) bool {
		if _, ok := r.structural[ch]; ok {
			return true
		}
		return unicode.IsPunct(ch) || unicode.IsSymbol(ch)
	})
}

func (r *Rules) isRemovable(ch rune) bool {
	_, ok := r.removable[ch]
	return ok
}
