package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"strings"

	terrors "github.com/PolarWolf314/titan/internal/errors"
)

const selectEntries = `
	SELECT id, title, user, url, password, notes, sqltime
	FROM entries`

// Insert adds e and returns its new id. e.ID is ignored.
func (s *Store) Insert(ctx context.Context, e Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (title, user, url, password, notes)
		VALUES (?, ?, ?, ?, ?)
	`, e.Title, e.User, e.URL, e.Password, e.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new entry id: %w", err)
	}
	return id, nil
}

// Update replaces every field of entry id with the fields of e and touches
// its timestamp.
func (s *Store) Update(ctx context.Context, id int64, e Entry) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE entries
		SET title = ?, user = ?, url = ?, password = ?, notes = ?, sqltime = CURRENT_TIMESTAMP
		WHERE id = ?
	`, e.Title, e.User, e.URL, e.Password, e.Notes, id)
	if err != nil {
		return fmt.Errorf("failed to update entry %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update entry %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("entry %d: %w", id, terrors.ErrEntryNotFound)
	}
	return nil
}

// Delete removes entry id. deleted is false when no such entry existed.
func (s *Store) Delete(ctx context.Context, id int64) (deleted bool, err error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	return n > 0, nil
}

// Get returns entry id or ErrEntryNotFound.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, selectEntries+" WHERE id = ?", id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %d: %w", id, terrors.ErrEntryNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// All yields every entry ordered by id.
func (s *Store) All(ctx context.Context) iter.Seq2[Entry, error] {
	return s.query(ctx, selectEntries+" ORDER BY id")
}

// Find yields entries whose title contains pattern, ignoring ASCII case.
// pattern is matched literally; % and _ have no special meaning.
func (s *Store) Find(ctx context.Context, pattern string) iter.Seq2[Entry, error] {
	return s.query(ctx, selectEntries+` WHERE title LIKE ? ESCAPE '\' ORDER BY id`,
		"%"+escapeLike(pattern)+"%")
}

// Count returns the number of entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(Entry{}, fmt.Errorf("failed to query entries: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			e, err := scanEntry(rows)
			if err != nil {
				yield(Entry{}, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Entry{}, fmt.Errorf("failed to iterate entries: %w", err))
		}
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Title, &e.User, &e.URL, &e.Password, &e.Notes, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, err
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to scan entry: %w", err)
	}
	return e, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
