// Package engine holds the pure ledger computations: running balances, bucketed
// timeseries, net worth and portfolio valuation, budget rollups and query
// filtering. Nothing in this package performs I/O; callers load entries through
// the repositories and hand them in.
package engine
