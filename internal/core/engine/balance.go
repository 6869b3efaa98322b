package engine

import (
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// BalanceSummary is the balance of one account at a cutoff.
type BalanceSummary struct {
	Opening    domain.SignedMoney
	EntriesSum domain.SignedMoney
	Balance    domain.SignedMoney
	EntryCount int
}

// ComputeBalance sums entries dated on or before at (all entries when at is nil) onto opening.
func ComputeBalance(opening domain.SignedMoney, entries []domain.LedgerEntry, at *time.Time) (BalanceSummary, error) {
	sum := domain.ZeroSignedMoney(opening.Currency())
	count := 0
	for _, e := range entries {
		if at != nil && e.Date.After(domain.DateOf(*at)) {
			continue
		}
		next, err := sum.Add(e.Amount)
		if err != nil {
			return BalanceSummary{}, err
		}
		sum = next
		count++
	}
	balance, err := opening.Add(sum)
	if err != nil {
		return BalanceSummary{}, err
	}
	return BalanceSummary{
		Opening:    opening,
		EntriesSum: sum,
		Balance:    balance,
		EntryCount: count,
	}, nil
}
