package workflows

import (
	"context"
	"iter"

	"github.com/PolarWolf314/titan/internal/passgen"
	"github.com/PolarWolf314/titan/internal/store"
)

// AddEntryOptions configures the add workflow.
type AddEntryOptions struct {
	Env

	Entry store.Entry

	// GenerateLength, when positive and Entry.Password is empty, fills the
	// password with a generated one of that length.
	GenerateLength int
}

// AddEntryResult contains the outcome of an add operation.
type AddEntryResult struct {
	ID int64

	// GeneratedPassword is set when the password was generated.
	GeneratedPassword string
}

// AddEntry inserts a record into the active database.
//
// Returns ErrNoActiveDatabase if no database is unsealed.
func AddEntry(ctx context.Context, opts AddEntryOptions) (*AddEntryResult, error) {
	entry := opts.Entry
	result := &AddEntryResult{}

	if entry.Password == "" && opts.GenerateLength > 0 {
		password, err := passgen.Generate(opts.GenerateLength)
		if err != nil {
			return nil, err
		}
		entry.Password = password
		result.GeneratedPassword = password
	}

	err := opts.withActiveStore(ctx, func(s *store.Store) error {
		id, err := s.Insert(ctx, entry)
		result.ID = id
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// EditEntryOptions configures the edit workflow.
type EditEntryOptions struct {
	Env

	ID int64

	// Changes holds the new field values. Empty fields keep their current
	// value.
	Changes store.Entry
}

// EditEntry updates a record in the active database and returns the result.
//
// Returns ErrEntryNotFound if no record has the id.
func EditEntry(ctx context.Context, opts EditEntryOptions) (*store.Entry, error) {
	var updated *store.Entry

	err := opts.withActiveStore(ctx, func(s *store.Store) error {
		current, err := s.Get(ctx, opts.ID)
		if err != nil {
			return err
		}

		merged := mergeEntry(*current, opts.Changes)
		if err := s.Update(ctx, opts.ID, merged); err != nil {
			return err
		}

		updated, err = s.Get(ctx, opts.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func mergeEntry(current, changes store.Entry) store.Entry {
	if changes.Title != "" {
		current.Title = changes.Title
	}
	if changes.User != "" {
		current.User = changes.User
	}
	if changes.URL != "" {
		current.URL = changes.URL
	}
	if changes.Password != "" {
		current.Password = changes.Password
	}
	if changes.Notes != "" {
		current.Notes = changes.Notes
	}
	return current
}

// RemoveEntryOptions configures the remove workflow.
type RemoveEntryOptions struct {
	Env

	ID int64
}

// RemoveEntry deletes a record from the active database.
//
// Returns ErrEntryNotFound if no record has the id.
func RemoveEntry(ctx context.Context, opts RemoveEntryOptions) error {
	return opts.withActiveStore(ctx, func(s *store.Store) error {
		// Get first so a missing id reports ErrEntryNotFound.
		if _, err := s.Get(ctx, opts.ID); err != nil {
			return err
		}
		_, err := s.Delete(ctx, opts.ID)
		return err
	})
}

// GetEntryOptions configures the show workflow.
type GetEntryOptions struct {
	Env

	ID int64
}

// GetEntry returns one record from the active database.
func GetEntry(ctx context.Context, opts GetEntryOptions) (*store.Entry, error) {
	var entry *store.Entry

	err := opts.withActiveStore(ctx, func(s *store.Store) error {
		var err error
		entry, err = s.Get(ctx, opts.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListEntriesOptions configures the list workflow.
type ListEntriesOptions struct {
	Env
}

// ListEntries yields every record of the active database. The store is
// opened when iteration starts and closed when it ends.
func ListEntries(ctx context.Context, opts ListEntriesOptions) iter.Seq2[store.Entry, error] {
	return opts.activeSeq(ctx, func(s *store.Store) iter.Seq2[store.Entry, error] {
		return s.All(ctx)
	})
}

// FindEntriesOptions configures the find workflow.
type FindEntriesOptions struct {
	Env

	// Pattern is matched against titles, ignoring case.
	Pattern string
}

// FindEntries yields the records whose title contains the pattern.
func FindEntries(ctx context.Context, opts FindEntriesOptions) iter.Seq2[store.Entry, error] {
	return opts.activeSeq(ctx, func(s *store.Store) iter.Seq2[store.Entry, error] {
		return s.Find(ctx, opts.Pattern)
	})
}
