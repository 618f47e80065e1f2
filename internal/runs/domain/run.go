// Package domain provides the pure domain layer for extraction runs.
//
// A Run is one persisted extraction: the original message and the candidate
// words a registry produced from it. The package has no infrastructure
// dependencies; persistence lives behind RunRepository.
package domain

import (
	"slices"
	"time"
)

// LengthUnit names how candidate words were measured for ordering.
type LengthUnit string

const (
	LengthUnitRunes     LengthUnit = "runes"
	LengthUnitGraphemes LengthUnit = "graphemes"
)

// IsValid reports whether u is a known unit.
func (u LengthUnit) IsValid() bool {
	switch u {
	case LengthUnitRunes, LengthUnitGraphemes:
		return true
	default:
		return false
	}
}

// Run is a persisted extraction. Fields are unexported; use NewRun or
// ReconstituteRun and the getters.
type Run struct {
	id         int64
	guid       string
	name       string
	message    string
	words      []string
	lengthUnit LengthUnit
	createdAt  time.Time
}

// NewRun creates an unsaved run (ID 0) stamped with the current time.
func NewRun(guid, name, message string, words []string, unit LengthUnit) *Run {
	return &Run{
		guid:       guid,
		name:       name,
		message:    message,
		words:      slices.Clone(words),
		lengthUnit: unit,
		createdAt:  time.Now(),
	}
}

// ReconstituteRun rebuilds a run from storage.
func ReconstituteRun(id int64, guid, name, message string, words []string, unit LengthUnit, createdAt time.Time) *Run {
	return &Run{
		id:         id,
		guid:       guid,
		name:       name,
		message:    message,
		words:      words,
		lengthUnit: unit,
		createdAt:  createdAt,
	}
}

func (r *Run) ID() int64              { return r.id }
func (r *Run) GUID() string           { return r.guid }
func (r *Run) Name() string           { return r.name }
func (r *Run) Message() string        { return r.message }
func (r *Run) LengthUnit() LengthUnit { return r.lengthUnit }
func (r *Run) CreatedAt() time.Time   { return r.createdAt }

// Words returns a copy of the candidate words.
func (r *Run) Words() []string { return slices.Clone(r.words) }

// WordCount returns the number of candidate words.
func (r *Run) WordCount() int { return len(r.words) }

// SetID is called by the repository after insert.
func (r *Run) SetID(id int64) { r.id = id }

// ShortGUID returns the first 8 characters of the GUID.
func (r *Run) ShortGUID() string {
	if len(r.guid) <= 8 {
		return r.guid
	}
	return r.guid[:8]
}
