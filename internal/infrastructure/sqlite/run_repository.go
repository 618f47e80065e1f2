package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

const runColumns = `id, guid, name, message, words, length_unit, created_at`

// runRepository implements domain.RunRepository using SQLite.
type runRepository struct {
	db *sql.DB
}

func newRunRepository(db *sql.DB) *runRepository {
	return &runRepository{db: db}
}

var _ domain.RunRepository = (*runRepository)(nil)

func scanRun(scanner interface{ Scan(...any) error }) (*RunModel, error) {
	var model RunModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.Name, &model.Message,
		&model.Words, &model.LengthUnit, &model.CreatedAt,
	)
	return &model, err
}

// Save inserts run and sets its ID.
func (r *runRepository) Save(run *domain.Run) error {
	if run.ID() != 0 {
		return fmt.Errorf("saving run %s: %w", run.GUID(), domain.ErrAlreadySaved)
	}

	model, err := toRunModel(run)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(
		`INSERT INTO runs (guid, name, message, words, length_unit, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		model.GUID, model.Name, model.Message, model.Words, model.LengthUnit, model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	run.SetID(id)

	log.Debug(log.CatDB, "run saved", "guid", run.GUID(), "words", run.WordCount())
	return nil
}

// FindByGUID retrieves a run by its exact GUID.
func (r *runRepository) FindByGUID(guid string) (*domain.Run, error) {
	row := r.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE guid = ?`, guid)
	model, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.RunNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find run by guid: %w", err)
	}
	return model.toDomain()
}

// FindByPrefix retrieves the only run whose GUID starts with prefix.
func (r *runRepository) FindByPrefix(prefix string) (*domain.Run, error) {
	if prefix == "" {
		return nil, &domain.RunNotFoundError{GUID: prefix}
	}

	rows, err := r.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE substr(guid, 1, length(?)) = ? ORDER BY created_at DESC, id DESC LIMIT 2`,
		prefix, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find run by prefix: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var models []*RunModel
	for rows.Next() {
		model, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	switch len(models) {
	case 0:
		return nil, &domain.RunNotFoundError{GUID: prefix}
	case 1:
		return models[0].toDomain()
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrAmbiguousPrefix, prefix)
	}
}

// List returns runs newest first.
func (r *runRepository) List(limit int) ([]*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*domain.Run
	for rows.Next() {
		model, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run, err := model.toDomain()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// Delete removes a run permanently.
func (r *runRepository) Delete(guid string) error {
	result, err := r.db.Exec(`DELETE FROM runs WHERE guid = ?`, guid)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return &domain.RunNotFoundError{GUID: guid}
	}
	log.Debug(log.CatDB, "run deleted", "guid", guid)
	return nil
}
