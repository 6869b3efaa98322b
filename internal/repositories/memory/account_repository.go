package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
)

type AccountRepository struct{ s *Store }

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	var (
		a  domain.Account
		ok bool
	)
	r.s.read(func() { a, ok = r.s.accounts[accountID] })
	if !ok {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return &a, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	var out []domain.Account
	r.s.read(func() {
		out = make([]domain.Account, 0, len(r.s.accounts))
		for _, a := range r.s.accounts {
			out = append(out, a)
		}
	})
	slices.SortFunc(out, func(a, b domain.Account) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.accounts[account.ID]; exists {
			return apperrors.NewDuplicateError("account", account.ID)
		}
		r.s.accounts[account.ID] = account
		return nil
	})
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.accounts[account.ID]; !exists {
			return apperrors.NewNotFoundError("account", account.ID)
		}
		r.s.accounts[account.ID] = account
		return nil
	})
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.accounts[accountID]; !exists {
			return apperrors.NewNotFoundError("account", accountID)
		}
		delete(r.s.accounts, accountID)
		return nil
	})
}
