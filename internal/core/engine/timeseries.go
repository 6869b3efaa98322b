package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Granularity is the calendar size of a timeseries bucket.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

func (g Granularity) IsValid() bool {
	switch g {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// ParseGranularity accepts daily|weekly|monthly|yearly. An empty value or "auto"
// returns "" and the caller picks one with PickGranularity.
func ParseGranularity(raw string) (Granularity, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "auto" {
		return "", nil
	}
	g := Granularity(s)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, raw)
	}
	return g, nil
}

// PickGranularity derives a bucket size from the inclusive span [from, to].
func PickGranularity(from, to time.Time) Granularity {
	days := daysBetween(domain.DateOf(from), domain.DateOf(to)) + 1
	switch {
	case days <= 60:
		return Daily
	case days <= 548:
		return Weekly
	case days <= 2920:
		return Monthly
	default:
		return Yearly
	}
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// BucketLabel maps a day to its bucket label: 2006-01-02, 2006-W01, 2006-01 or 2006.
func BucketLabel(g Granularity, d time.Time) (string, error) {
	switch g {
	case Daily:
		return d.Format(domain.DateLayout), nil
	case Weekly:
		y, w := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w), nil
	case Monthly:
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month())), nil
	case Yearly:
		return fmt.Sprintf("%04d", d.Year()), nil
	}
	return "", fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, g)
}

// TimeseriesPoint is one bucket of an account or net worth timeseries.
// Income and Expense are magnitudes; balances include every kind of entry.
type TimeseriesPoint struct {
	Bucket       string
	Income       domain.SignedMoney
	Expense      domain.SignedMoney
	Net          domain.SignedMoney
	BalanceStart domain.SignedMoney
	BalanceEnd   domain.SignedMoney
}

type bucketTotals struct {
	income    decimal.Decimal
	expense   decimal.Decimal
	signedSum decimal.Decimal
}

// ComputeTimeseries buckets entries of one account over [from, to] inclusive.
// Every bucket in the span is emitted in chronological order, including empty ones.
func ComputeTimeseries(opening domain.SignedMoney, entries []domain.LedgerEntry, from, to time.Time, g Granularity) ([]TimeseriesPoint, error) {
	from, to = domain.DateOf(from), domain.DateOf(to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: date_from must be <= date_to", apperrors.ErrValidation)
	}
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, g)
	}
	currency := opening.Currency()

	balance := opening.Amount()
	buckets := make(map[string]*bucketTotals)
	for _, e := range entries {
		if e.Amount.Currency() != currency {
			return nil, fmt.Errorf("%w: entry %s is in %s, expected %s",
				apperrors.ErrValidation, e.ID, e.Amount.Currency(), currency)
		}
		if e.Date.Before(from) {
			balance = balance.Add(e.Amount.Amount())
			continue
		}
		if e.Date.After(to) {
			continue
		}
		label, err := BucketLabel(g, e.Date)
		if err != nil {
			return nil, err
		}
		b, ok := buckets[label]
		if !ok {
			b = &bucketTotals{}
			buckets[label] = b
		}
		switch e.Kind {
		case domain.KindIncome:
			b.income = b.income.Add(e.Amount.Amount().Abs())
		case domain.KindExpense:
			b.expense = b.expense.Add(e.Amount.Amount().Abs())
		}
		b.signedSum = b.signedSum.Add(e.Amount.Amount())
	}

	var points []TimeseriesPoint
	flush := func(label string) {
		b, ok := buckets[label]
		if !ok {
			b = &bucketTotals{}
		}
		start := balance
		balance = balance.Add(b.signedSum)
		points = append(points, TimeseriesPoint{
			Bucket:       label,
			Income:       mustSigned(b.income, currency),
			Expense:      mustSigned(b.expense, currency),
			Net:          mustSigned(b.income.Sub(b.expense), currency),
			BalanceStart: mustSigned(start, currency),
			BalanceEnd:   mustSigned(balance, currency),
		})
	}

	last := ""
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		label, _ := BucketLabel(g, day)
		if last != "" && label != last {
			flush(last)
		}
		last = label
	}
	flush(last)
	return points, nil
}
