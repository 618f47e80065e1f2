package testutil

import (
	"time"

	"github.com/zjrosen/cryptowords/internal/punctuation"
	"github.com/zjrosen/cryptowords/internal/registry"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

// runData holds all data for a run to be inserted.
type runData struct {
	guid      string
	name      string
	message   string
	words     []string
	unit      domain.LengthUnit
	createdAt time.Time
}

// defaultRun returns a runData with sensible defaults.
func defaultRun(guid string) runData {
	return runData{
		guid:      guid,
		unit:      domain.LengthUnitRunes,
		createdAt: time.Now(),
	}
}

func (d runData) toDomain() *domain.Run {
	return domain.ReconstituteRun(0, d.guid, d.name, d.message, d.words, d.unit, d.createdAt)
}

// RunOption configures a run during builder setup.
type RunOption func(*runData)

// Name sets the run name.
func Name(name string) RunOption {
	return func(r *runData) { r.name = name }
}

// Words sets the candidate words verbatim.
func Words(words ...string) RunOption {
	return func(r *runData) { r.words = words }
}

// Message sets the message and derives the candidate words from it with
// the default punctuation rules, as extract would.
func Message(lines ...string) RunOption {
	return func(r *runData) {
		reg := registry.New(punctuation.DefaultRules(), registry.WithLengthFunc(lengthFunc(r.unit)))
		for _, line := range lines {
			reg.Ingest(line)
		}
		r.message = reg.OriginalMessage()
		r.words = reg.CandidateWords()
	}
}

func lengthFunc(unit domain.LengthUnit) registry.LengthFunc {
	if unit == domain.LengthUnitGraphemes {
		return registry.LengthGraphemes
	}
	return registry.LengthRunes
}

// Unit sets the length unit. Apply it before Message to order by it.
func Unit(unit domain.LengthUnit) RunOption {
	return func(r *runData) { r.unit = unit }
}

// CreatedAt sets the creation timestamp.
func CreatedAt(t time.Time) RunOption {
	return func(r *runData) { r.createdAt = t }
}
