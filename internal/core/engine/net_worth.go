package engine

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// CommonCurrency returns the single currency shared by accounts, or fallback
// when there are none. Mixed currencies are rejected with ErrUnsupported.
func CommonCurrency(accounts []domain.Account, fallback domain.Currency) (domain.Currency, error) {
	var seen []string
	for _, a := range accounts {
		if !slices.Contains(seen, string(a.Currency)) {
			seen = append(seen, string(a.Currency))
		}
	}
	switch len(seen) {
	case 0:
		return fallback, nil
	case 1:
		return domain.Currency(seen[0]), nil
	}
	slices.Sort(seen)
	return "", fmt.Errorf("%w: multiple currencies not supported in one aggregation (%s)",
		apperrors.ErrUnsupported, strings.Join(seen, ", "))
}

// EntriesByAccount partitions entries by account id.
func EntriesByAccount(entries []domain.LedgerEntry) map[string][]domain.LedgerEntry {
	out := make(map[string][]domain.LedgerEntry)
	for _, e := range entries {
		out[e.AccountID] = append(out[e.AccountID], e)
	}
	return out
}

// NetWorth sums the balances of accounts at the cutoff at (nil means no cutoff).
func NetWorth(accounts []domain.Account, entries []domain.LedgerEntry, at *time.Time, fallback domain.Currency) (domain.SignedMoney, error) {
	currency, err := CommonCurrency(accounts, fallback)
	if err != nil {
		return domain.SignedMoney{}, err
	}
	byAccount := EntriesByAccount(entries)

	total := domain.ZeroSignedMoney(currency)
	for _, a := range accounts {
		summary, err := ComputeBalance(a.OpeningBalance, byAccount[a.ID], at)
		if err != nil {
			return domain.SignedMoney{}, fmt.Errorf("account %q: %w", a.ID, err)
		}
		if total, err = total.Add(summary.Balance); err != nil {
			return domain.SignedMoney{}, err
		}
	}
	return total, nil
}

// GroupTotal is the net worth of all accounts of one type.
type GroupTotal struct {
	AccountType domain.AccountType
	Total       domain.SignedMoney
}

// GroupedNetWorth runs NetWorth per account type. Groups are sorted by type name.
func GroupedNetWorth(accounts []domain.Account, entries []domain.LedgerEntry, at *time.Time, fallback domain.Currency) ([]GroupTotal, error) {
	groups := make(map[domain.AccountType][]domain.Account)
	for _, a := range accounts {
		groups[a.AccountType] = append(groups[a.AccountType], a)
	}
	types := make([]domain.AccountType, 0, len(groups))
	for t := range groups {
		types = append(types, t)
	}
	slices.Sort(types)

	out := make([]GroupTotal, 0, len(types))
	for _, t := range types {
		total, err := NetWorth(groups[t], entries, at, fallback)
		if err != nil {
			return nil, err
		}
		out = append(out, GroupTotal{AccountType: t, Total: total})
	}
	return out, nil
}

// NetWorthTimeseries sums per-account timeseries bucket-wise, ordered by label.
// With no accounts it yields zero buckets in fallback so charts stay gapless.
func NetWorthTimeseries(accounts []domain.Account, entries []domain.LedgerEntry, from, to time.Time, g Granularity, fallback domain.Currency) ([]TimeseriesPoint, error) {
	currency, err := CommonCurrency(accounts, fallback)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return ComputeTimeseries(domain.ZeroSignedMoney(currency), nil, from, to, g)
	}
	byAccount := EntriesByAccount(entries)

	aggregated := make(map[string]*TimeseriesPoint)
	for _, a := range accounts {
		points, err := ComputeTimeseries(a.OpeningBalance, byAccount[a.ID], from, to, g)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", a.ID, err)
		}
		for _, p := range points {
			agg, ok := aggregated[p.Bucket]
			if !ok {
				cp := p
				aggregated[p.Bucket] = &cp
				continue
			}
			if err := addPoint(agg, p); err != nil {
				return nil, err
			}
		}
	}

	labels := make([]string, 0, len(aggregated))
	for l := range aggregated {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	out := make([]TimeseriesPoint, 0, len(labels))
	for _, l := range labels {
		out = append(out, *aggregated[l])
	}
	return out, nil
}

func addPoint(dst *TimeseriesPoint, p TimeseriesPoint) error {
	var err error
	if dst.Income, err = dst.Income.Add(p.Income); err != nil {
		return err
	}
	if dst.Expense, err = dst.Expense.Add(p.Expense); err != nil {
		return err
	}
	if dst.Net, err = dst.Net.Add(p.Net); err != nil {
		return err
	}
	if dst.BalanceStart, err = dst.BalanceStart.Add(p.BalanceStart); err != nil {
		return err
	}
	dst.BalanceEnd, err = dst.BalanceEnd.Add(p.BalanceEnd)
	return err
}
