package mapping

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/models"
)

// ToModelPortfolio converts a domain Portfolio to a model Portfolio
func ToModelPortfolio(d domain.Portfolio) models.Portfolio {
	return models.Portfolio{
		PortfolioID:   d.ID,
		Name:          d.Name,
		CurrencyCode:  string(d.Currency),
		PortfolioType: string(d.PortfolioType),
		OpenedOn:      d.OpenedOn,
		CashAccountID: d.CashAccountID,
	}
}

// ToDomainPortfolio converts a model Portfolio to a domain Portfolio.
// The cash account id is derived again from the portfolio id.
func ToDomainPortfolio(m models.Portfolio) (domain.Portfolio, error) {
	currency, err := domain.ParseCurrency(m.CurrencyCode)
	if err != nil {
		return domain.Portfolio{}, err
	}
	p, err := domain.NewPortfolio(m.PortfolioID, m.Name, currency, domain.PortfolioType(m.PortfolioType), m.OpenedOn)
	if err != nil {
		return domain.Portfolio{}, err
	}
	return *p, nil
}

// ToDomainPortfolios converts a slice of model Portfolios
func ToDomainPortfolios(ms []models.Portfolio) ([]domain.Portfolio, error) {
	out := make([]domain.Portfolio, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainPortfolio(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToModelSnapshot converts a domain PortfolioSnapshot to a model PortfolioSnapshot
func ToModelSnapshot(d domain.PortfolioSnapshot) models.PortfolioSnapshot {
	return models.PortfolioSnapshot{
		SnapshotID:   d.ID,
		PortfolioID:  d.PortfolioID,
		SnapshotDate: d.Date,
		Value:        d.Value.Amount(),
		CurrencyCode: string(d.Value.Currency()),
		Note:         d.Note,
	}
}

// ToDomainSnapshot converts a model PortfolioSnapshot to a domain PortfolioSnapshot
func ToDomainSnapshot(m models.PortfolioSnapshot) (domain.PortfolioSnapshot, error) {
	currency, err := domain.ParseCurrency(m.CurrencyCode)
	if err != nil {
		return domain.PortfolioSnapshot{}, err
	}
	value, err := domain.NewMoney(m.Value, currency)
	if err != nil {
		return domain.PortfolioSnapshot{}, err
	}
	s, err := domain.NewPortfolioSnapshot(m.SnapshotID, m.PortfolioID, m.SnapshotDate, value, m.Note)
	if err != nil {
		return domain.PortfolioSnapshot{}, err
	}
	return *s, nil
}

// ToDomainSnapshots converts a slice of model PortfolioSnapshots
func ToDomainSnapshots(ms []models.PortfolioSnapshot) ([]domain.PortfolioSnapshot, error) {
	out := make([]domain.PortfolioSnapshot, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainSnapshot(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
