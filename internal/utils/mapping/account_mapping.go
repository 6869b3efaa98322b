package mapping

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.ID,
		Name:           d.Name,
		CurrencyCode:   string(d.Currency),
		OpeningBalance: d.OpeningBalance.Amount(),
		OpenedOn:       d.OpenedOn,
		AccountType:    string(d.AccountType),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) (domain.Account, error) {
	currency, err := domain.ParseCurrency(m.CurrencyCode)
	if err != nil {
		return domain.Account{}, err
	}
	opening, err := domain.NewSignedMoney(m.OpeningBalance, currency)
	if err != nil {
		return domain.Account{}, err
	}
	acc, err := domain.NewAccount(m.AccountID, m.Name, currency, opening, m.OpenedOn, domain.AccountType(m.AccountType))
	if err != nil {
		return domain.Account{}, err
	}
	return *acc, nil
}

// ToDomainAccounts converts a slice of model Accounts
func ToDomainAccounts(ms []models.Account) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
