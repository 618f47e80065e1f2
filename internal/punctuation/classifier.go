// Package punctuation decides which punctuation a token may carry into the
// candidate word set.
//
// A Classifier does two things: it strips punctuation that is always safe to
// drop (sentence punctuation, quotes, brackets) and it reports whether what
// is left still carries punctuation the dictionary can never match. The
// registry only ever depends on the Classifier interface; Rules is the
// default, configurable policy.
package punctuation

// Classifier is the punctuation policy consumed by the word registry.
type Classifier interface {
	// Strip removes punctuation that is always removable.
	Strip(token string) string
	// HasDisallowed reports whether a stripped token still carries
	// punctuation that excludes it from dictionary matching.
	HasDisallowed(token string) bool
}

// Result is the outcome of classifying one raw token.
type Result struct {
	Cleaned    string
	Admissible bool
}

// Classify strips token and reports whether the stripped form is admissible.
func Classify(c Classifier, token string) Result {
	cleaned := c.Strip(token)
	return Result{
		Cleaned:    cleaned,
		Admissible: !c.HasDisallowed(cleaned),
	}
}

// Func adapts a pair of plain functions to Classifier.
type Func struct {
	StripFunc         func(string) string
	HasDisallowedFunc func(string) bool
}

// Strip calls StripFunc, or returns token unchanged when it is nil.
func (f Func) Strip(token string) string {
	if f.StripFunc == nil {
		return token
	}
	return f.StripFunc(token)
}

// HasDisallowed calls HasDisallowedFunc, or reports false when it is nil.
func (f Func) HasDisallowed(token string) bool {
	if f.HasDisallowedFunc == nil {
		return false
	}
	return f.HasDisallowedFunc(token)
}
