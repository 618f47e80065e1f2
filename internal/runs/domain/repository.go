package domain

// RunRepository is the persistence interface for runs.
type RunRepository interface {
	// Save inserts a new run and assigns its ID. Runs are immutable once
	// saved; saving a run that already has an ID is an error.
	Save(run *Run) error

	// FindByGUID returns the run with the exact GUID.
	// Returns *RunNotFoundError if none exists.
	FindByGUID(guid string) (*Run, error)

	// FindByPrefix returns the single run whose GUID starts with prefix.
	// Returns *RunNotFoundError if none matches and ErrAmbiguousPrefix if
	// several do.
	FindByPrefix(prefix string) (*Run, error)

	// List returns runs newest first. A limit <= 0 returns all runs.
	List(limit int) ([]*Run, error)

	// Delete removes a run permanently.
	// Returns *RunNotFoundError if none exists.
	Delete(guid string) error
}
