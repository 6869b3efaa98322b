package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/wealth_tracker/internal/models"
	"github.com/SscSPs/wealth_tracker/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, account_id, entry_date, sequence, amount, currency_code, kind, category, subcategory, label, created_at, transfer_id`

const entryOrder = ` ORDER BY entry_date, sequence, account_id, entry_id`

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return mapping.ToDomainEntries(ms)
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error) {
	entries, err := r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFoundError("entry", entryID.String())
	}
	return &entries[0], nil
}

// ListEntries returns the entries of accountID, or of every account when it is empty.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	if accountID == "" {
		return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries`+entryOrder+`;`)
	}
	return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE account_id = $1`+entryOrder+`;`, accountID)
}

func (r *PgxEntryRepository) FindEntriesByTransferID(ctx context.Context, transferID uuid.UUID) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE transfer_id = $1`+entryOrder+`;`, transferID)
}

// lockSequence takes the transaction scoped advisory lock guarding the
// sequences of (accountID, day). Every write that adds, removes or renumbers
// entries of a pair holds it, so writers to one pair queue up.
func (r *PgxEntryRepository) lockSequence(ctx context.Context, accountID string, day time.Time) error {
	lockKey := accountID + "|" + domain.DateOf(day).Format(domain.DateLayout)
	if _, err := r.db(ctx).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, lockKey); err != nil {
		return fmt.Errorf("failed to lock sequence %s: %w", lockKey, err)
	}
	return nil
}

type sequencePair struct {
	AccountID string    `db:"account_id"`
	EntryDate time.Time `db:"entry_date"`
}

// lockStoredPairs locks the pairs the rows matching where currently sit in,
// in a fixed order. It repeats until no matching row sits in an unlocked pair,
// since a concurrent date move can relocate a row between the read and the lock.
func (r *PgxEntryRepository) lockStoredPairs(ctx context.Context, op, where string, args ...any) error {
	if !r.inTx(ctx) {
		return fmt.Errorf("%s must run inside a transaction", op)
	}
	locked := map[sequencePair]bool{}
	for {
		rows, err := r.db(ctx).Query(ctx,
			`SELECT DISTINCT account_id, entry_date FROM ledger_entries WHERE `+where+` ORDER BY account_id, entry_date;`, args...)
		if err != nil {
			return fmt.Errorf("failed to read sequence pairs for %s: %w", op, err)
		}
		pairs, err := pgx.CollectRows(rows, pgx.RowToStructByName[sequencePair])
		if err != nil {
			return fmt.Errorf("failed to scan sequence pairs for %s: %w", op, err)
		}
		fresh := 0
		for _, p := range pairs {
			p.EntryDate = domain.DateOf(p.EntryDate)
			if locked[p] {
				continue
			}
			if err := r.lockSequence(ctx, p.AccountID, p.EntryDate); err != nil {
				return err
			}
			locked[p] = true
			fresh++
		}
		if fresh == 0 {
			return nil
		}
	}
}

// NextSequence locks (account, date) before reading the current maximum.
func (r *PgxEntryRepository) NextSequence(ctx context.Context, accountID string, date time.Time) (int, error) {
	if !r.inTx(ctx) {
		return 0, errors.New("NextSequence must run inside a transaction")
	}
	day := domain.DateOf(date)
	if err := r.lockSequence(ctx, accountID, day); err != nil {
		return 0, err
	}

	var next int
	query := `SELECT COALESCE(MAX(sequence), 0) + 1 FROM ledger_entries WHERE account_id = $1 AND entry_date = $2;`
	if err := r.db(ctx).QueryRow(ctx, query, accountID, day).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to read next sequence for %s: %w", accountID, err)
	}
	return next, nil
}

// CloseSequenceGap renumbers the whole pair densely under its lock. removed is
// the sequence the caller saw before locking and only labels errors, so a
// concurrent change to the pair cannot leave a hole.
func (r *PgxEntryRepository) CloseSequenceGap(ctx context.Context, accountID string, date time.Time, removed int) error {
	if !r.inTx(ctx) {
		return errors.New("CloseSequenceGap must run inside a transaction")
	}
	day := domain.DateOf(date)
	if err := r.lockSequence(ctx, accountID, day); err != nil {
		return err
	}
	query := `
		UPDATE ledger_entries e SET sequence = ranked.dense
		FROM (
			SELECT entry_id, ROW_NUMBER() OVER (ORDER BY sequence, created_at, entry_id) AS dense
			FROM ledger_entries WHERE account_id = $1 AND entry_date = $2
		) ranked
		WHERE e.entry_id = ranked.entry_id AND e.sequence <> ranked.dense;
	`
	if _, err := r.db(ctx).Exec(ctx, query, accountID, day); err != nil {
		return fmt.Errorf("failed to close sequence gap after %d for %s: %w", removed, accountID, err)
	}
	return nil
}

// SaveEntries inserts all entries in one batch.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries ...domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO ledger_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.AccountID,
			m.EntryDate,
			m.Sequence,
			m.Amount,
			m.CurrencyCode,
			m.Kind,
			m.Category,
			m.Subcategory,
			m.Label,
			m.CreatedAt,
			m.TransferID,
		)
	}

	br := r.db(ctx).SendBatch(ctx, batch)
	defer br.Close()
	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: entry %s or its sequence is already taken", apperrors.ErrDuplicate, e.ID)
			}
			return fmt.Errorf("failed to save entry %s: %w", e.ID, err)
		}
	}
	return nil
}

// UpdateEntries rewrites every stored column of the given entries except created_at.
func (r *PgxEntryRepository) UpdateEntries(ctx context.Context, entries ...domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		UPDATE ledger_entries
		SET account_id = $2, entry_date = $3, sequence = $4, amount = $5, currency_code = $6,
		    kind = $7, category = $8, subcategory = $9, label = $10, transfer_id = $11
		WHERE entry_id = $1;
	`
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID.String())
	}
	if err := r.lockStoredPairs(ctx, "UpdateEntries", `entry_id = ANY($1::uuid[])`, ids); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.AccountID,
			m.EntryDate,
			m.Sequence,
			m.Amount,
			m.CurrencyCode,
			m.Kind,
			m.Category,
			m.Subcategory,
			m.Label,
			m.TransferID,
		)
	}

	br := r.db(ctx).SendBatch(ctx, batch)
	defer br.Close()
	for _, e := range entries {
		tag, err := br.Exec()
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: sequence %d on %s is already taken", apperrors.ErrDuplicate, e.Sequence, e.Date.Format(domain.DateLayout))
			}
			return fmt.Errorf("failed to update entry %s: %w", e.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("entry", e.ID.String())
		}
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, accountID string, entryID uuid.UUID) (bool, error) {
	if err := r.lockStoredPairs(ctx, "DeleteEntry", `entry_id = $1 AND account_id = $2`, entryID, accountID); err != nil {
		return false, err
	}
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1 AND account_id = $2;`, entryID, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxEntryRepository) DeleteEntriesByAccount(ctx context.Context, accountID string) (int, error) {
	if err := r.lockStoredPairs(ctx, "DeleteEntriesByAccount", `account_id = $1`, accountID); err != nil {
		return 0, err
	}
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM ledger_entries WHERE account_id = $1;`, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries of account %s: %w", accountID, err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteTransfer removes both legs. The negative leg is reported as fromID.
func (r *PgxEntryRepository) DeleteTransfer(ctx context.Context, transferID uuid.UUID) (fromID, toID uuid.UUID, err error) {
	if err := r.lockStoredPairs(ctx, "DeleteTransfer", `transfer_id = $1`, transferID); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	rows, err := r.db(ctx).Query(ctx, `DELETE FROM ledger_entries WHERE transfer_id = $1 RETURNING entry_id, amount;`, transferID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to delete transfer %s: %w", transferID, err)
	}
	type leg struct {
		ID     uuid.UUID       `db:"entry_id"`
		Amount decimal.Decimal `db:"amount"`
	}
	legs, err := pgx.CollectRows(rows, pgx.RowToStructByName[leg])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to read deleted legs of transfer %s: %w", transferID, err)
	}
	if len(legs) == 0 {
		return uuid.Nil, uuid.Nil, apperrors.NewNotFoundError("transfer", transferID.String())
	}
	for _, l := range legs {
		if l.Amount.IsNegative() {
			fromID = l.ID
		} else {
			toID = l.ID
		}
	}
	return fromID, toID, nil
}
