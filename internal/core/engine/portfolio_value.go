package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/google/uuid"
)

// LatestSnapshot returns the latest snapshot of portfolioID dated on or before at
// (any date when at is nil). Ties on date go to the highest id.
func LatestSnapshot(snapshots []domain.PortfolioSnapshot, portfolioID uuid.UUID, at *time.Time) (domain.PortfolioSnapshot, bool) {
	var (
		best  domain.PortfolioSnapshot
		found bool
	)
	for _, s := range snapshots {
		if s.PortfolioID != portfolioID {
			continue
		}
		if at != nil && s.Date.After(domain.DateOf(*at)) {
			continue
		}
		if !found || s.Date.After(best.Date) ||
			(s.Date.Equal(best.Date) && s.ID.String() > best.ID.String()) {
			best, found = s, true
		}
	}
	return best, found
}

// PortfoliosValue sums the latest snapshot value of each portfolio at the cutoff.
// A portfolio without snapshots contributes zero.
func PortfoliosValue(portfolios []domain.Portfolio, snapshots []domain.PortfolioSnapshot, at *time.Time, currency domain.Currency) (domain.SignedMoney, error) {
	total := domain.ZeroSignedMoney(currency)
	for _, p := range portfolios {
		if p.Currency != currency {
			return domain.SignedMoney{}, fmt.Errorf("%w: portfolio %s is in %s, aggregation is in %s",
				apperrors.ErrUnsupported, p.ID, p.Currency, currency)
		}
		s, ok := LatestSnapshot(snapshots, p.ID, at)
		if !ok {
			continue
		}
		var err error
		if total, err = total.Add(s.Value.Signed()); err != nil {
			return domain.SignedMoney{}, err
		}
	}
	return total, nil
}

// NetWorthFull is cash net worth plus portfolio valuations.
func NetWorthFull(accounts []domain.Account, entries []domain.LedgerEntry, portfolios []domain.Portfolio,
	snapshots []domain.PortfolioSnapshot, at *time.Time, fallback domain.Currency) (domain.SignedMoney, error) {
	cash, err := NetWorth(accounts, entries, at, fallback)
	if err != nil {
		return domain.SignedMoney{}, err
	}
	pv, err := PortfoliosValue(portfolios, snapshots, at, cash.Currency())
	if err != nil {
		return domain.SignedMoney{}, err
	}
	return cash.Add(pv)
}

// NetWorthFullTimeseries adds portfolio values, taken at each bucket's end date,
// to the balances of the cash net worth timeseries.
func NetWorthFullTimeseries(accounts []domain.Account, entries []domain.LedgerEntry, portfolios []domain.Portfolio,
	snapshots []domain.PortfolioSnapshot, from, to time.Time, g Granularity, fallback domain.Currency) ([]TimeseriesPoint, error) {
	points, err := NetWorthTimeseries(accounts, entries, from, to, g, fallback)
	if err != nil {
		return nil, err
	}
	currency, err := CommonCurrency(accounts, fallback)
	if err != nil {
		return nil, err
	}
	out := make([]TimeseriesPoint, 0, len(points))
	for _, p := range points {
		asOf, err := BucketEndDate(p.Bucket, g, from, to)
		if err != nil {
			return nil, err
		}
		pv, err := PortfoliosValue(portfolios, snapshots, &asOf, currency)
		if err != nil {
			return nil, err
		}
		if p.BalanceStart, err = p.BalanceStart.Add(pv); err != nil {
			return nil, err
		}
		if p.BalanceEnd, err = p.BalanceEnd.Add(pv); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// BucketEndDate rebuilds the as-of date of a bucket label, clamped to [from, to].
func BucketEndDate(bucket string, g Granularity, from, to time.Time) (time.Time, error) {
	from, to = domain.DateOf(from), domain.DateOf(to)
	invalid := func() (time.Time, error) {
		return time.Time{}, fmt.Errorf("%w: invalid %s bucket %q", apperrors.ErrValidation, g, bucket)
	}

	var end time.Time
	switch g {
	case Daily:
		d, err := time.Parse(domain.DateLayout, bucket)
		if err != nil {
			return invalid()
		}
		end = d
	case Weekly:
		yearPart, weekPart, ok := strings.Cut(bucket, "-W")
		if !ok {
			return invalid()
		}
		y, errY := strconv.Atoi(yearPart)
		w, errW := strconv.Atoi(weekPart)
		if errY != nil || errW != nil || w < 1 || w > 53 {
			return invalid()
		}
		end = isoWeekMonday(y, w).AddDate(0, 0, 6)
	case Monthly:
		d, err := time.Parse("2006-01", bucket)
		if err != nil {
			return invalid()
		}
		end = d.AddDate(0, 1, -1)
	case Yearly:
		y, err := strconv.Atoi(bucket)
		if err != nil {
			return invalid()
		}
		end = time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return time.Time{}, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, g)
	}

	if end.After(to) {
		end = to
	}
	if end.Before(from) {
		end = from
	}
	return end, nil
}

// isoWeekMonday returns the Monday of ISO week w of ISO year y.
func isoWeekMonday(y, w int) time.Time {
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+(w-1)*7)
}
