package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/utils/accounting"
	"github.com/SscSPs/wealth_tracker/internal/utils/pagination"
	"github.com/google/uuid"
)

// entryService handles plain ledger entries. Transfer legs and trade mirrors
// are owned by the transfer and trade services.
type entryService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountReader
	entryRepo   portsrepo.EntryRepositoryFacade
	tradeRepo   portsrepo.TradeRepositoryFacade
}

// NewEntryService creates a new ledger entry service.
func NewEntryService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountReader,
	entryRepo portsrepo.EntryRepositoryFacade, tradeRepo portsrepo.TradeRepositoryFacade, options ...ServiceOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		tradeRepo:   tradeRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// entryInput is a parsed entry payload, shared by the JSON and CSV paths.
type entryInput struct {
	date        string
	amount      string
	kind        string
	category    string
	subcategory *string
	label       *string
}

func (s *entryService) CreateEntry(ctx context.Context, accountID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	entry, err := s.post(ctx, account, entryInput{
		date:        req.Date,
		amount:      req.Amount,
		kind:        req.Kind,
		category:    req.Category,
		subcategory: req.Subcategory,
		label:       req.Label,
	})
	s.Record("entry_create", err)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Entry created",
		slog.String("account_id", entry.AccountID),
		slog.String("entry_id", entry.ID.String()),
		slog.Int("sequence", entry.Sequence))
	return entry, nil
}

// post validates in and persists it with the next sequence of its day.
func (s *entryService) post(ctx context.Context, account *domain.Account, in entryInput) (*domain.LedgerEntry, error) {
	date, err := domain.ParseDate(in.date)
	if err != nil {
		return nil, err
	}
	kind, err := domain.ParseEntryKind(in.kind)
	if err != nil {
		return nil, err
	}
	if kind == domain.KindTransfer {
		return nil, fmt.Errorf("%w: TRANSFER entries are created through a transfer", apperrors.ErrConflict)
	}
	amount, err := domain.ParseSignedMoney(in.amount, account.Currency)
	if err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		seq, err := s.entryRepo.NextSequence(ctx, account.ID, date)
		if err != nil {
			return err
		}
		entry, err = domain.NewLedgerEntry(domain.NewLedgerEntryParams{
			AccountID:   account.ID,
			Date:        date,
			Sequence:    seq,
			Amount:      amount,
			Kind:        kind,
			Category:    in.category,
			Subcategory: domain.TrimOrNil(in.subcategory),
			Label:       domain.TrimOrNil(in.label),
		})
		if err != nil {
			return err
		}
		return s.entryRepo.SaveEntries(ctx, *entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error) {
	id, err := parseID("entry", entryID)
	if err != nil {
		return nil, err
	}
	return s.findAccountEntry(ctx, accountID, id)
}

func (s *entryService) findAccountEntry(ctx context.Context, accountID string, id uuid.UUID) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.AccountID != accountID {
		return nil, apperrors.NewNotFoundError("entry", id.String())
	}
	return entry, nil
}

// checkNotTradeMirror rejects edits of a cash entry a trade still points at.
func (s *entryService) checkNotTradeMirror(ctx context.Context, e domain.LedgerEntry) error {
	if !accounting.IsPassThroughAccount(e.AccountID) {
		return nil
	}
	trades, err := s.tradeRepo.ListTrades(ctx, uuid.Nil)
	if err != nil {
		return err
	}
	for _, t := range trades {
		if t.LinkedCashEntryID != nil && *t.LinkedCashEntryID == e.ID {
			return fmt.Errorf("%w: entry %s mirrors trade %s, change the trade instead", apperrors.ErrConflict, e.ID, t.ID)
		}
	}
	return nil
}

func (s *entryService) UpdateEntry(ctx context.Context, accountID, entryID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error) {
	id, err := parseID("entry", entryID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var u engine.EntryUpdate
	if u.Date, err = parseDatePtr(req.Date); err != nil {
		return nil, err
	}
	if req.Amount != nil {
		amount, err := domain.ParseSignedMoney(*req.Amount, account.Currency)
		if err != nil {
			return nil, err
		}
		u.Amount = &amount
	}
	if req.Kind != nil {
		kind, err := domain.ParseEntryKind(*req.Kind)
		if err != nil {
			return nil, err
		}
		u.Kind = &kind
	}
	u.Category = req.Category
	u.Subcategory = req.Subcategory
	u.Label = req.Label

	var updated *domain.LedgerEntry
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.findAccountEntry(ctx, accountID, id)
		if err != nil {
			return err
		}
		if err := engine.CheckEntryUpdatable(*current); err != nil {
			return err
		}
		if err := s.checkNotTradeMirror(ctx, *current); err != nil {
			return err
		}

		seq := current.Sequence
		moved := u.MovesEntry(*current)
		if moved {
			if seq, err = s.entryRepo.NextSequence(ctx, accountID, *u.Date); err != nil {
				return err
			}
		}
		if updated, err = engine.ApplyEntryUpdate(*current, account.Currency, u, seq); err != nil {
			return err
		}
		if err := s.entryRepo.UpdateEntries(ctx, *updated); err != nil {
			return err
		}
		if moved {
			return s.entryRepo.CloseSequenceGap(ctx, accountID, current.Date, current.Sequence)
		}
		return nil
	})
	s.Record("entry_update", err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, accountID, entryID string) error {
	id, err := parseID("entry", entryID)
	if err != nil {
		return err
	}
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.findAccountEntry(ctx, accountID, id)
		if err != nil {
			return err
		}
		if current.IsTransferLeg() {
			return fmt.Errorf("%w: entry %s is a transfer leg, delete its transfer", apperrors.ErrConflict, id)
		}
		if err := s.checkNotTradeMirror(ctx, *current); err != nil {
			return err
		}
		deleted, err := s.entryRepo.DeleteEntry(ctx, accountID, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.NewNotFoundError("entry", id.String())
		}
		return s.entryRepo.CloseSequenceGap(ctx, accountID, current.Date, current.Sequence)
	})
	s.Record("entry_delete", err)
	return err
}

// ListEntries annotates every entry with the balance after it in canonical
// order, then filters, sorts and pages the annotated rows.
func (s *entryService) ListEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	q, err := entryQueryFromParams(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	rows, err := engine.RunningBalance(entries, account.OpeningBalance)
	if err != nil {
		return nil, err
	}
	balances := make(map[uuid.UUID]domain.SignedMoney, len(rows))
	for _, r := range rows {
		balances[r.Entry.ID] = r.BalanceAfter
	}

	selected := engine.ApplyEntryQuery(entries, q)
	annotated := make([]engine.EntryWithBalance, len(selected))
	for i, e := range selected {
		annotated[i] = engine.EntryWithBalance{Entry: e, BalanceAfter: balances[e.ID]}
	}

	page, next, err := pagination.Paginate(annotated, params.Limit, params.NextToken, entryQueryScope(accountID, params))
	if err != nil {
		return nil, err
	}
	resp := &dto.ListEntriesResponse{Entries: dto.ToEntryWithBalanceResponses(page)}
	if next != "" {
		resp.NextToken = &next
	}
	return resp, nil
}

func entryQueryFromParams(params dto.ListEntriesParams) (engine.EntryQuery, error) {
	var q engine.EntryQuery
	var err error
	if q.DateFrom, err = parseOptionalDate(params.DateFrom); err != nil {
		return q, err
	}
	if q.DateTo, err = parseOptionalDate(params.DateTo); err != nil {
		return q, err
	}
	for _, raw := range params.Kinds {
		kind, err := domain.ParseEntryKind(raw)
		if err != nil {
			return q, err
		}
		q.Kinds = append(q.Kinds, kind)
	}
	q.Categories = params.Categories
	q.Subcategories = params.Subcategories
	q.Q = params.Q
	if q.SortBy, err = engine.ParseEntrySortField(params.SortBy); err != nil {
		return q, err
	}
	if q.SortDir, err = engine.ParseSortDirection(params.SortDir); err != nil {
		return q, err
	}
	return q, nil
}

// entryQueryScope binds page tokens to the listing that issued them.
func entryQueryScope(accountID string, p dto.ListEntriesParams) string {
	return strings.Join([]string{
		accountID, p.DateFrom, p.DateTo,
		strings.Join(p.Kinds, ","), strings.Join(p.Categories, ","), strings.Join(p.Subcategories, ","),
		p.Q, p.SortBy, p.SortDir,
	}, "|")
}
