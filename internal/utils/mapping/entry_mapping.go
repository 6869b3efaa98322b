package mapping

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/models"
)

// ToModelEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:      d.ID,
		AccountID:    d.AccountID,
		EntryDate:    d.Date,
		Sequence:     d.Sequence,
		Amount:       d.Amount.Amount(),
		CurrencyCode: string(d.Amount.Currency()),
		Kind:         string(d.Kind),
		Category:     d.Category,
		Subcategory:  d.Subcategory,
		Label:        d.Label,
		CreatedAt:    d.CreatedAt,
		TransferID:   d.TransferID,
	}
}

// ToDomainEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	currency, err := domain.ParseCurrency(m.CurrencyCode)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	amount, err := domain.NewSignedMoney(m.Amount, currency)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	e, err := domain.NewLedgerEntry(domain.NewLedgerEntryParams{
		ID:          m.EntryID,
		AccountID:   m.AccountID,
		Date:        m.EntryDate,
		Sequence:    m.Sequence,
		Amount:      amount,
		Kind:        domain.EntryKind(m.Kind),
		Category:    m.Category,
		Subcategory: m.Subcategory,
		Label:       m.Label,
		CreatedAt:   m.CreatedAt,
		TransferID:  m.TransferID,
	})
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	return *e, nil
}

// ToDomainEntries converts a slice of model LedgerEntries
func ToDomainEntries(ms []models.LedgerEntry) ([]domain.LedgerEntry, error) {
	out := make([]domain.LedgerEntry, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainEntry(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
