// Package registry holds the words of one encrypted message.
//
// A Registry reconstructs the original message line by line and keeps the
// set of distinct candidate words a pattern-matching solver works through,
// longest first. Each solving run owns its own Registry; Reset makes it
// reusable for the next run in the same process.
package registry

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/pubsub"
	"github.com/zjrosen/cryptowords/internal/punctuation"
)

// LengthFunc measures a word for ordering.
type LengthFunc func(string) int

// LengthRunes counts Unicode code points. It is the default.
func LengthRunes(s string) int { return utf8.RuneCountInString(s) }

// LengthGraphemes counts user-perceived characters, so a letter followed by
// a combining accent counts once.
func LengthGraphemes(s string) int { return uniseg.GraphemeClusterCount(s) }

// Change is published after every Ingest and Reset when a publisher is set.
type Change struct {
	// Admitted lists the words the ingested line added, in line order.
	Admitted []string
	// Total is the candidate count after the change.
	Total int
}

// Snapshot is a consistent copy of the registry state.
type Snapshot struct {
	Message string
	Words   []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLengthFunc replaces the length measure used for ordering.
func WithLengthFunc(fn LengthFunc) Option {
	return func(r *Registry) {
		if fn != nil {
			r.length = fn
		}
	}
}

// WithPublisher publishes a Change after every Ingest and Reset.
func WithPublisher(p pubsub.Publisher[Change]) Option {
	return func(r *Registry) {
		r.publisher = p
	}
}

// Registry accumulates the original message and its candidate words.
// It is safe for concurrent use. A Registry must not be copied.
type Registry struct {
	classifier punctuation.Classifier
	length     LengthFunc
	publisher  pubsub.Publisher[Change]

	mu      sync.Mutex
	message strings.Builder
	words   []string // insertion order
	seen    map[string]struct{}
	sorted  []string // cached length-ordered view, nil when stale
}

// New creates an empty Registry that filters tokens through classifier.
func New(classifier punctuation.Classifier, opts ...Option) *Registry {
	r := &Registry{
		classifier: classifier,
		length:     LengthRunes,
		seen:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ingest appends line to the original message and admits its distinct,
// punctuation-free tokens as candidate words. The line is recorded even
// when none of its tokens are admitted. A panicking classifier propagates
// to the caller; tokens before the failing one stay admitted.
func (r *Registry) Ingest(line string) {
	admitted, total := r.ingest(line)

	log.Debug(log.CatRegistry, "line ingested", "admitted", len(admitted), "total", total)
	r.publish(pubsub.IngestedEvent, Change{Admitted: admitted, Total: total})
}

func (r *Registry) ingest(line string) ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.message.WriteString(line)
	r.message.WriteByte('\n')

	var admitted []string
	for _, token := range strings.Fields(line) {
		cleaned := r.classifier.Strip(token)
		if r.classifier.HasDisallowed(cleaned) {
			continue
		}
		if _, dup := r.seen[cleaned]; dup {
			continue
		}
		r.seen[cleaned] = struct{}{}
		r.words = append(r.words, cleaned)
		r.sorted = nil
		admitted = append(admitted, cleaned)
	}
	return admitted, len(r.words)
}

// OriginalMessage returns every ingested line, each followed by a newline,
// in ingestion order.
func (r *Registry) OriginalMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message.String()
}

// CandidateWords returns the distinct candidate words ordered by descending
// length; words of equal length keep first-insertion order. The returned
// slice is a copy.
func (r *Registry) CandidateWords() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.orderedLocked())
}

// Snapshot returns the message and candidate words read under one lock.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Message: r.message.String(),
		Words:   slices.Clone(r.orderedLocked()),
	}
}

// Len returns the number of candidate words.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.words)
}

// Contains reports whether word is a candidate.
func (r *Registry) Contains(word string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.seen[word]
	return ok
}

// Reset empties the message and the candidate words.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.message.Reset()
	r.words = nil
	r.sorted = nil
	clear(r.seen)
	r.mu.Unlock()

	log.Debug(log.CatRegistry, "registry reset")
	r.publish(pubsub.ResetEvent, Change{})
}

// orderedLocked derives the length-ordered view from insertion order. A
// stable sort over insertion order keeps equal-length words in the order
// they were first admitted.
func (r *Registry) orderedLocked() []string {
	if r.sorted == nil && len(r.words) > 0 {
		sorted := slices.Clone(r.words)
		slices.SortStableFunc(sorted, func(a, b string) int {
			return r.length(b) - r.length(a)
		})
		r.sorted = sorted
	}
	return r.sorted
}

func (r *Registry) publish(eventType pubsub.EventType, change Change) {
	if r.publisher != nil {
		r.publisher.Publish(eventType, change)
	}
}
