package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
)

// studyStore implements driven.StudyStore.
type studyStore struct {
	store *Store
}

var _ driven.StudyStore = (*studyStore)(nil)

// Save creates or replaces the entry for entry.Literal.
func (s *studyStore) Save(ctx context.Context, entry domain.StudyEntry) error {
	if !domain.ValidConfidence(entry.Confidence) {
		return domain.ErrInvalidInput
	}

	query, args, err := sq.Insert("study_entries").
		Columns("literal", "confidence", "added_at").
		Values(int64(entry.Literal), entry.Confidence, entry.AddedAt.UTC().Format(timeLayout)).
		Suffix("ON CONFLICT(literal) DO UPDATE SET confidence = excluded.confidence, added_at = excluded.added_at").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving study entry: %w", err)
	}
	return nil
}

// Get retrieves an entry.
func (s *studyStore) Get(ctx context.Context, literal rune) (*domain.StudyEntry, error) {
	query, args, err := sq.Select("literal", "confidence", "added_at").
		From("study_entries").
		Where(sq.Eq{"literal": int64(literal)}).
		ToSql()
	if err != nil {
		return nil, err
	}
	entry, err := scanStudyEntry(s.store.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns every entry ordered by AddedAt, then literal.
func (s *studyStore) List(ctx context.Context) ([]domain.StudyEntry, error) {
	query, args, err := sq.Select("literal", "confidence", "added_at").
		From("study_entries").
		OrderBy("added_at", "literal").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying study entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.StudyEntry{}
	for rows.Next() {
		entry, err := scanStudyEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study entries: %w", err)
	}
	return entries, nil
}

// Delete removes an entry.
func (s *studyStore) Delete(ctx context.Context, literal rune) error {
	query, args, err := sq.Delete("study_entries").
		Where(sq.Eq{"literal": int64(literal)}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := s.store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting study entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting study entry: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudyEntry(row rowScanner) (*domain.StudyEntry, error) {
	var (
		literal int64
		entry   domain.StudyEntry
		addedAt string
	)
	if err := row.Scan(&literal, &entry.Confidence, &addedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning study entry: %w", err)
	}
	t, err := time.Parse(timeLayout, addedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing added_at: %w", err)
	}
	entry.Literal = rune(literal)
	entry.AddedAt = t
	return &entry, nil
}
