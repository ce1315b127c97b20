package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driven"
)

// insertBatchSize bounds the rows per INSERT to stay under SQLite's variable limit.
const insertBatchSize = 500

// snapshotStore implements driven.SnapshotStore.
type snapshotStore struct {
	store *Store
}

var _ driven.SnapshotStore = (*snapshotStore)(nil)

var characterColumns = []string{
	"snapshot_id", "literal", "on_readings", "kun_readings", "meanings", "nanori",
	"grade", "stroke_count", "frequency", "jlpt",
}

// Save replaces any existing snapshot with db.
func (s *snapshotStore) Save(ctx context.Context, db *domain.Database) (*domain.SnapshotInfo, error) {
	info := &domain.SnapshotInfo{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Characters: db.CharacterCount(),
		Strokes:    db.StrokeCount(),
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, table := range []string{"snapshot_strokes", "snapshot_characters", "snapshots"} {
		query, args, err := sq.Delete(table).ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	query, args, err := sq.Insert("snapshots").
		Columns("id", "created_at", "characters", "strokes").
		Values(info.ID, info.CreatedAt.Format(timeLayout), info.Characters, info.Strokes).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}

	if err := insertCharacters(ctx, tx, info.ID, db); err != nil {
		return nil, err
	}
	if err := insertStrokes(ctx, tx, info.ID, db); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing snapshot: %w", err)
	}
	return info, nil
}

func insertCharacters(ctx context.Context, tx *sql.Tx, snapshotID string, db *domain.Database) error {
	literals := db.Literals()
	for start := 0; start < len(literals); start += insertBatchSize {
		end := min(start+insertBatchSize, len(literals))
		insert := sq.Insert("snapshot_characters").Columns(characterColumns...)
		for _, r := range literals[start:end] {
			rec, _ := db.Character(r)
			on, err := marshalStrings(rec.OnReadings)
			if err != nil {
				return err
			}
			kun, err := marshalStrings(rec.KunReadings)
			if err != nil {
				return err
			}
			meanings, err := marshalStrings(rec.Meanings)
			if err != nil {
				return err
			}
			nanori, err := marshalStrings(rec.Nanori)
			if err != nil {
				return err
			}
			insert = insert.Values(snapshotID, int64(r), on, kun, meanings, nanori,
				rec.Grade, rec.StrokeCount, rec.Frequency, rec.JLPT)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting characters: %w", err)
		}
	}
	return nil
}

func insertStrokes(ctx context.Context, tx *sql.Tx, snapshotID string, db *domain.Database) error {
	literals := db.StrokeLiterals()
	for start := 0; start < len(literals); start += insertBatchSize {
		end := min(start+insertBatchSize, len(literals))
		insert := sq.Insert("snapshot_strokes").Columns("snapshot_id", "literal", "paths")
		for _, r := range literals[start:end] {
			recipe, _ := db.Strokes(r)
			var paths []string
			if recipe.Strokes != nil {
				paths = make([]string, len(recipe.Strokes))
				for i, p := range recipe.Strokes {
					paths[i] = p.D
				}
			}
			data, err := json.Marshal(paths)
			if err != nil {
				return fmt.Errorf("marshalling paths: %w", err)
			}
			insert = insert.Values(snapshotID, int64(r), string(data))
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting strokes: %w", err)
		}
	}
	return nil
}

// Load restores the saved database.
func (s *snapshotStore) Load(ctx context.Context) (*domain.Database, error) {
	info, err := s.Info(ctx)
	if err != nil {
		return nil, err
	}

	characters, err := s.loadCharacters(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	strokes, err := s.loadStrokes(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	return domain.NewDatabase(characters, strokes), nil
}

func (s *snapshotStore) loadCharacters(ctx context.Context, snapshotID string) (map[rune]domain.CharacterRecord, error) {
	query, args, err := sq.Select(characterColumns[1:]...).
		From("snapshot_characters").
		Where(sq.Eq{"snapshot_id": snapshotID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	out := make(map[rune]domain.CharacterRecord)
	for rows.Next() {
		var (
			literal                   int64
			on, kun, meanings, nanori string
			rec                       domain.CharacterRecord
		)
		if err := rows.Scan(&literal, &on, &kun, &meanings, &nanori,
			&rec.Grade, &rec.StrokeCount, &rec.Frequency, &rec.JLPT); err != nil {
			return nil, fmt.Errorf("scanning character: %w", err)
		}
		rec.Literal = rune(literal)
		if rec.OnReadings, err = unmarshalStrings(on); err != nil {
			return nil, err
		}
		if rec.KunReadings, err = unmarshalStrings(kun); err != nil {
			return nil, err
		}
		if rec.Meanings, err = unmarshalStrings(meanings); err != nil {
			return nil, err
		}
		if rec.Nanori, err = unmarshalStrings(nanori); err != nil {
			return nil, err
		}
		out[rec.Literal] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating characters: %w", err)
	}
	return out, nil
}

func (s *snapshotStore) loadStrokes(ctx context.Context, snapshotID string) (map[rune]domain.StrokeRecipe, error) {
	query, args, err := sq.Select("literal", "paths").
		From("snapshot_strokes").
		Where(sq.Eq{"snapshot_id": snapshotID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying strokes: %w", err)
	}
	defer rows.Close()

	out := make(map[rune]domain.StrokeRecipe)
	for rows.Next() {
		var (
			literal int64
			data    string
		)
		if err := rows.Scan(&literal, &data); err != nil {
			return nil, fmt.Errorf("scanning strokes: %w", err)
		}
		var paths []string
		if err := json.Unmarshal([]byte(data), &paths); err != nil {
			return nil, fmt.Errorf("unmarshalling paths: %w", err)
		}
		recipe := domain.StrokeRecipe{}
		if paths != nil {
			recipe.Strokes = make([]domain.PathDescriptor, len(paths))
			for i, d := range paths {
				recipe.Strokes[i] = domain.PathDescriptor{D: d}
			}
		}
		out[rune(literal)] = recipe
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating strokes: %w", err)
	}
	return out, nil
}

// Info describes the saved snapshot.
func (s *snapshotStore) Info(ctx context.Context) (*domain.SnapshotInfo, error) {
	query, args, err := sq.Select("id", "created_at", "characters", "strokes").
		From("snapshots").
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		info      domain.SnapshotInfo
		createdAt string
	)
	err = s.store.db.QueryRowContext(ctx, query, args...).
		Scan(&info.ID, &createdAt, &info.Characters, &info.Strokes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotMissing
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	if info.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing snapshot time: %w", err)
	}
	return &info, nil
}

// Clear removes the saved snapshot.
func (s *snapshotStore) Clear(ctx context.Context) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, table := range []string{"snapshot_strokes", "snapshot_characters", "snapshots"} {
		query, args, err := sq.Delete(table).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func marshalStrings(v []string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshalling strings: %w", err)
	}
	return string(data), nil
}

func unmarshalStrings(s string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("unmarshalling strings: %w", err)
	}
	return out, nil
}
