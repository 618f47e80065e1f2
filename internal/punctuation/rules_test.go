package punctuation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRules_Strip(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "trailing comma", token: "Hrlo,", want: "Hrlo"},
		{name: "trailing bang", token: "wrold!", want: "wrold"},
		{name: "quoted", token: `"xqz"`, want: "xqz"},
		{name: "brackets", token: "(abc)", want: "abc"},
		{name: "ellipsis", token: "wait…", want: "wait"},
		{name: "apostrophe kept", token: "dn't.", want: "dn't"},
		{name: "hyphen kept", token: "x-ray", want: "x-ray"},
		{name: "only punctuation", token: "?!", want: ""},
		{name: "untouched", token: "QWERTY", want: "QWERTY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rules.Strip(tt.token))
		})
	}
}

func TestRules_HasDisallowed(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "plain letters", token: "wrold", want: false},
		{name: "digits allowed", token: "abc123", want: false},
		{name: "accented letters", token: "ÉTÉ", want: false},
		{name: "empty", token: "", want: true},
		{name: "apostrophe", token: "dn't", want: true},
		{name: "hyphen", token: "x-ray", want: true},
		{name: "symbol", token: "a+b", want: true},
		{name: "unlisted punctuation", token: "a@b", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rules.HasDisallowed(tt.token))
		})
	}
}

func TestNewRules_RejectsOverlap(t *testing.T) {
	_, err := NewRules(".,'", "'-")
	require.Error(t, err)
	require.Contains(t, err.Error(), "both removable and structural")
}

func TestNewRules_CustomStructural(t *testing.T) {
	// An apostrophe listed as removable makes contractions into candidates.
	rules, err := NewRules(".,'", "-")
	require.NoError(t, err)

	res := Classify(rules, "dn't,")
	require.Equal(t, Result{Cleaned: "dnt", Admissible: true}, res)
}

func TestClassify(t *testing.T) {
	rules := DefaultRules()

	require.Equal(t, Result{Cleaned: "Hrlo", Admissible: true}, Classify(rules, "Hrlo,"))
	require.Equal(t, Result{Cleaned: "dn't", Admissible: false}, Classify(rules, "dn't"))
	require.Equal(t, Result{Cleaned: "", Admissible: false}, Classify(rules, "!!"))
}

func TestFunc_NilFuncsAreIdentity(t *testing.T) {
	var f Func
	require.Equal(t, "a,b", f.Strip("a,b"))
	require.False(t, f.HasDisallowed("a,b"))

	f = Func{
		StripFunc:         strings.ToLower,
		HasDisallowedFunc: func(s string) bool { return s == "x" },
	}
	require.Equal(t, Result{Cleaned: "x", Admissible: false}, Classify(f, "X"))
}

// TestRules_StripProperties checks that stripping removes every removable rune,
// is idempotent, and that admissible tokens carry no punctuation at all.
func TestRules_StripProperties(t *testing.T) {
	rules := DefaultRules()

	rapid.Check(t, func(r *rapid.T) {
		token := rapid.StringMatching(`[a-zA-Z.,!?;:"()'\-]{0,12}`).Draw(r, "token")

		cleaned := rules.Strip(token)
		require.False(t, strings.ContainsAny(cleaned, DefaultRemovable), "cleaned %q", cleaned)
		require.Equal(t, cleaned, rules.Strip(cleaned), "strip must be idempotent")

		if res := Classify(rules, token); res.Admissible {
			require.NotEmpty(t, res.Cleaned)
			require.False(t, strings.ContainsAny(res.Cleaned, DefaultRemovable+DefaultStructural))
		}
	})
}
