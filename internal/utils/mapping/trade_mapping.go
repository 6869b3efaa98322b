package mapping

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/models"
)

// ToModelTrade converts a domain Trade to a model Trade
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		TradeID:           d.ID,
		PortfolioID:       d.PortfolioID,
		TradeDate:         d.Date,
		Side:              string(d.Side),
		InstrumentSymbol:  d.InstrumentSymbol,
		Quantity:          d.Quantity,
		Price:             d.Price,
		Fees:              d.Fees,
		CurrencyCode:      string(d.Currency),
		Label:             d.Label,
		LinkedCashEntryID: d.LinkedCashEntryID,
	}
}

// ToDomainTrade converts a model Trade to a domain Trade
func ToDomainTrade(m models.Trade) (domain.Trade, error) {
	t, err := domain.NewTrade(domain.NewTradeParams{
		ID:                m.TradeID,
		PortfolioID:       m.PortfolioID,
		Date:              m.TradeDate,
		Side:              domain.TradeSide(m.Side),
		InstrumentSymbol:  m.InstrumentSymbol,
		Quantity:          m.Quantity,
		Price:             m.Price,
		Fees:              m.Fees,
		Currency:          domain.Currency(m.CurrencyCode),
		Label:             m.Label,
		LinkedCashEntryID: m.LinkedCashEntryID,
	})
	if err != nil {
		return domain.Trade{}, err
	}
	return *t, nil
}

// ToDomainTrades converts a slice of model Trades
func ToDomainTrades(ms []models.Trade) ([]domain.Trade, error) {
	out := make([]domain.Trade, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainTrade(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToModelInstrument converts a domain Instrument to a model Instrument
func ToModelInstrument(d domain.Instrument) models.Instrument {
	return models.Instrument{
		Symbol:       d.Symbol,
		Kind:         string(d.Kind),
		CurrencyCode: string(d.Currency),
	}
}

// ToDomainInstrument converts a model Instrument to a domain Instrument
func ToDomainInstrument(m models.Instrument) (domain.Instrument, error) {
	in, err := domain.NewInstrument(m.Symbol, domain.InstrumentKind(m.Kind), domain.Currency(m.CurrencyCode))
	if err != nil {
		return domain.Instrument{}, err
	}
	return *in, nil
}
