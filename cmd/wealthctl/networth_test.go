package main

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
)

func money(amount, display string) dto.MoneyResponse {
	return dto.MoneyResponse{Amount: amount, Currency: "EUR", Display: display}
}

func TestNetWorthMarkdown(t *testing.T) {
	at := "2026-01-31"
	grouped := &dto.GroupedNetWorthResponse{
		At:       &at,
		Currency: "EUR",
		Groups: []dto.GroupTotalResponse{
			{AccountType: "CHECKING", Total: money("798.50", "€798.50")},
			{AccountType: "SAVINGS", Total: money("200.00", "€200.00")},
		},
		Total: money("998.50", "€998.50"),
	}

	md := netWorthMarkdown(grouped, nil)
	assert.Contains(t, md, "# Net worth on 2026-01-31 (EUR)")
	assert.Contains(t, md, "| CHECKING | €798.50 |")
	assert.Contains(t, md, "| **Accounts** | **€998.50** |")
	assert.NotContains(t, md, "Portfolios")

	portfolios := money("210.00", "€210.00")
	full := &dto.NetWorthResponse{Currency: "EUR", Total: money("1208.50", "€1,208.50"), Portfolios: &portfolios}
	md = netWorthMarkdown(grouped, full)
	assert.Contains(t, md, "| Portfolios | €210.00 |")
	assert.Contains(t, md, "| **Net worth** | **€1,208.50** |")
}

func TestNetWorthMarkdown_Today(t *testing.T) {
	md := netWorthMarkdown(&dto.GroupedNetWorthResponse{Currency: "USD", Total: money("0.00", "$0.00")}, nil)
	assert.Contains(t, md, "# Net worth on today (USD)")
}
