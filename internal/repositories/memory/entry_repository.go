package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type EntryRepository struct{ s *Store }

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

func compareEntries(a, b domain.LedgerEntry) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Sequence, b.Sequence); c != 0 {
		return c
	}
	if c := cmp.Compare(a.AccountID, b.AccountID); c != 0 {
		return c
	}
	return cmp.Compare(a.ID.String(), b.ID.String())
}

func (r *EntryRepository) FindEntryByID(_ context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error) {
	var (
		e  domain.LedgerEntry
		ok bool
	)
	r.s.read(func() { e, ok = r.s.entries[entryID] })
	if !ok {
		return nil, apperrors.NewNotFoundError("entry", entryID.String())
	}
	return &e, nil
}

func (r *EntryRepository) ListEntries(_ context.Context, accountID string) ([]domain.LedgerEntry, error) {
	out := []domain.LedgerEntry{}
	r.s.read(func() {
		for _, e := range r.s.entries {
			if accountID == "" || e.AccountID == accountID {
				out = append(out, e)
			}
		}
	})
	slices.SortFunc(out, compareEntries)
	return out, nil
}

func (r *EntryRepository) FindEntriesByTransferID(_ context.Context, transferID uuid.UUID) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	r.s.read(func() { out = r.s.transferLegs(transferID) })
	return out, nil
}

// transferLegs expects the caller to hold mu.
func (s *Store) transferLegs(transferID uuid.UUID) []domain.LedgerEntry {
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if e.TransferID != nil && *e.TransferID == transferID {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, compareEntries)
	return out
}

func (r *EntryRepository) NextSequence(ctx context.Context, accountID string, date time.Time) (int, error) {
	if !r.s.inTx(ctx) {
		return 0, fmt.Errorf("next sequence for %s: called outside a transaction", accountID)
	}
	day := domain.DateOf(date)
	maxSeq := 0
	r.s.read(func() {
		for _, e := range r.s.entries {
			if e.AccountID == accountID && e.Date.Equal(day) && e.Sequence > maxSeq {
				maxSeq = e.Sequence
			}
		}
	})
	return maxSeq + 1, nil
}

func (r *EntryRepository) CloseSequenceGap(ctx context.Context, accountID string, date time.Time, removed int) error {
	day := domain.DateOf(date)
	return r.s.write(ctx, func() error {
		for id, e := range r.s.entries {
			if e.AccountID == accountID && e.Date.Equal(day) && e.Sequence > removed {
				e.Sequence--
				r.s.entries[id] = e
			}
		}
		return nil
	})
}

// checkSequences rejects a batch that would give two entries of one account
// the same (date, sequence). Expects the caller to hold mu.
func (s *Store) checkSequences(batch []domain.LedgerEntry) error {
	type slot struct {
		account string
		date    time.Time
		seq     int
	}
	inBatch := make(map[uuid.UUID]bool, len(batch))
	for _, e := range batch {
		inBatch[e.ID] = true
	}
	taken := make(map[slot]bool)
	for _, e := range s.entries {
		if !inBatch[e.ID] {
			taken[slot{e.AccountID, e.Date, e.Sequence}] = true
		}
	}
	for _, e := range batch {
		k := slot{e.AccountID, e.Date, e.Sequence}
		if taken[k] {
			return fmt.Errorf("%w: sequence %d on %s is taken in account %s",
				apperrors.ErrDuplicate, e.Sequence, e.Date.Format(time.DateOnly), e.AccountID)
		}
		taken[k] = true
	}
	return nil
}

func (r *EntryRepository) SaveEntries(ctx context.Context, entries ...domain.LedgerEntry) error {
	return r.s.write(ctx, func() error {
		for _, e := range entries {
			if _, exists := r.s.entries[e.ID]; exists {
				return apperrors.NewDuplicateError("entry", e.ID.String())
			}
		}
		if err := r.s.checkSequences(entries); err != nil {
			return err
		}
		for _, e := range entries {
			r.s.entries[e.ID] = e
		}
		return nil
	})
}

func (r *EntryRepository) UpdateEntries(ctx context.Context, entries ...domain.LedgerEntry) error {
	return r.s.write(ctx, func() error {
		for _, e := range entries {
			if _, exists := r.s.entries[e.ID]; !exists {
				return apperrors.NewNotFoundError("entry", e.ID.String())
			}
		}
		if err := r.s.checkSequences(entries); err != nil {
			return err
		}
		for _, e := range entries {
			r.s.entries[e.ID] = e
		}
		return nil
	})
}

func (r *EntryRepository) DeleteEntry(ctx context.Context, accountID string, entryID uuid.UUID) (bool, error) {
	var deleted bool
	err := r.s.write(ctx, func() error {
		e, ok := r.s.entries[entryID]
		if !ok || e.AccountID != accountID {
			return nil
		}
		delete(r.s.entries, entryID)
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *EntryRepository) DeleteEntriesByAccount(ctx context.Context, accountID string) (int, error) {
	var n int
	err := r.s.write(ctx, func() error {
		for id, e := range r.s.entries {
			if e.AccountID == accountID {
				delete(r.s.entries, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *EntryRepository) DeleteTransfer(ctx context.Context, transferID uuid.UUID) (fromID, toID uuid.UUID, err error) {
	err = r.s.write(ctx, func() error {
		legs := r.s.transferLegs(transferID)
		if len(legs) == 0 {
			return apperrors.NewNotFoundError("transfer", transferID.String())
		}
		for _, leg := range legs {
			if leg.Amount.IsNegative() {
				fromID = leg.ID
			} else {
				toID = leg.ID
			}
			delete(r.s.entries, leg.ID)
		}
		return nil
	})
	return fromID, toID, err
}
