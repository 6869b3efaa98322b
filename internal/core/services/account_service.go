package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/utils/accounting"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountRepositoryFacade
	entryRepo   portsrepo.EntryRepositoryFacade
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountRepositoryFacade,
	entryRepo portsrepo.EntryRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	id := uuid.NewString()
	if req.ID != nil && strings.TrimSpace(*req.ID) != "" {
		id = strings.TrimSpace(*req.ID)
	}
	if accounting.IsPassThroughAccount(id) {
		return nil, apperrors.NewValidationError("account id %q is reserved for portfolio cash accounts", id)
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	openingRaw := req.OpeningBalance
	if strings.TrimSpace(openingRaw) == "" {
		openingRaw = "0"
	}
	opening, err := domain.ParseSignedMoney(openingRaw, currency)
	if err != nil {
		return nil, err
	}
	openedOn, err := domain.ParseDate(req.OpenedOn)
	if err != nil {
		return nil, err
	}
	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, err
	}

	account, err := domain.NewAccount(id, req.Name, currency, opening, openedOn, accountType)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.ID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.ID), slog.String("currency", string(account.Currency)))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	name := account.Name
	if req.Name != nil {
		name = *req.Name
	}
	accountType := account.AccountType
	if req.AccountType != nil {
		if accountType, err = domain.ParseAccountType(*req.AccountType); err != nil {
			return nil, err
		}
	}

	updated, err := domain.NewAccount(account.ID, name, account.Currency, account.OpeningBalance, account.OpenedOn, accountType)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdateAccount(ctx, *updated); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return updated, nil
}

// DeleteAccount cascades the account's entries. A transfer touching the account
// is removed as a whole so no orphan leg survives in the other account.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if accounting.IsPassThroughAccount(accountID) {
		if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		return fmt.Errorf("%w: account %s belongs to a portfolio, delete the portfolio instead", apperrors.ErrConflict, accountID)
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		entries, err := s.entryRepo.ListEntries(ctx, accountID)
		if err != nil {
			return err
		}
		if err := removeTransfersOf(ctx, s.entryRepo, accountID, entries); err != nil {
			return err
		}
		removed, err := s.entryRepo.DeleteEntriesByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
			return err
		}
		s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.Int("entries_removed", removed))
		return nil
	})
	s.Record("account_delete", err)
	return err
}

// removeTransfersOf deletes every transfer with a leg among entries and closes the
// sequence gap its other leg leaves behind.
func removeTransfersOf(ctx context.Context, entryRepo portsrepo.EntryRepositoryFacade, accountID string, entries []domain.LedgerEntry) error {
	seen := make(map[uuid.UUID]bool)
	for _, e := range entries {
		if e.TransferID == nil || seen[*e.TransferID] {
			continue
		}
		seen[*e.TransferID] = true
		legs, err := entryRepo.FindEntriesByTransferID(ctx, *e.TransferID)
		if err != nil {
			return err
		}
		if _, _, err := entryRepo.DeleteTransfer(ctx, *e.TransferID); err != nil {
			return err
		}
		for _, leg := range legs {
			if leg.AccountID == accountID {
				continue
			}
			if err := entryRepo.CloseSequenceGap(ctx, leg.AccountID, leg.Date, leg.Sequence); err != nil {
				return err
			}
		}
	}
	return nil
}
