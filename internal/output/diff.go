package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeType classifies one entry of a word diff.
type ChangeType int

const (
	Unchanged ChangeType = iota
	Added
	Removed
)

// WordChange is one word in a diff between two candidate lists.
type WordChange struct {
	Type ChangeType
	Word string
}

// DiffWords compares two ordered candidate lists word by word.
func DiffWords(oldWords, newWords []string) []WordChange {
	// Each distinct word maps to one rune so the diff never splits a word.
	index := make(map[string]rune)
	var vocab []string
	encode := func(words []string) []rune {
		out := make([]rune, len(words))
		for i, w := range words {
			r, ok := index[w]
			if !ok {
				r = wordRuneBase + rune(len(vocab))
				index[w] = r
				vocab = append(vocab, w)
			}
			out[i] = r
		}
		return out
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(encode(oldWords), encode(newWords), false)

	var changes []WordChange
	for _, d := range diffs {
		var kind ChangeType
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = Unchanged
		case diffmatchpatch.DiffInsert:
			kind = Added
		case diffmatchpatch.DiffDelete:
			kind = Removed
		}
		for _, r := range d.Text {
			changes = append(changes, WordChange{Type: kind, Word: vocab[r-wordRuneBase]})
		}
	}
	return changes
}

// wordRuneBase starts word codes in the private use area, clear of surrogates.
const wordRuneBase rune = 0xE000

// RenderDiff writes changes as "+ word", "- word" and "  word" lines.
func RenderDiff(w io.Writer, changes []WordChange) error {
	s := newStyles(w)

	var b strings.Builder
	for _, c := range changes {
		switch c.Type {
		case Added:
			b.WriteString(s.added.Render("+ " + c.Word))
		case Removed:
			b.WriteString(s.removed.Render("- " + c.Word))
		default:
			b.WriteString("  " + c.Word)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	return nil
}
