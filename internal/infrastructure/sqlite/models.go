package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

// RunModel is the database row for the runs table.
type RunModel struct {
	ID         int64
	GUID       string
	Name       *string // nullable
	Message    string
	Words      string // JSON array
	LengthUnit string
	CreatedAt  int64 // Unix timestamp
}

func toRunModel(r *domain.Run) (*RunModel, error) {
	words, err := json.Marshal(r.Words())
	if err != nil {
		return nil, fmt.Errorf("encoding words: %w", err)
	}
	m := &RunModel{
		ID:         r.ID(),
		GUID:       r.GUID(),
		Message:    r.Message(),
		Words:      string(words),
		LengthUnit: string(r.LengthUnit()),
		CreatedAt:  r.CreatedAt().Unix(),
	}
	if r.Name() != "" {
		name := r.Name()
		m.Name = &name
	}
	return m, nil
}

func (m *RunModel) toDomain() (*domain.Run, error) {
	var words []string
	if err := json.Unmarshal([]byte(m.Words), &words); err != nil {
		return nil, fmt.Errorf("decoding words for run %s: %w", m.GUID, err)
	}
	name := ""
	if m.Name != nil {
		name = *m.Name
	}
	return domain.ReconstituteRun(
		m.ID, m.GUID, name, m.Message, words,
		domain.LengthUnit(m.LengthUnit),
		time.Unix(m.CreatedAt, 0),
	), nil
}
