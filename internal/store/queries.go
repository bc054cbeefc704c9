package store

import (
	"sort"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// The query methods are pure reads over the current snapshot: they never
// mutate state and never fail, returning empty collections or zero when
// nothing matches. Sums use plain float64 addition with no rounding;
// formatting to two decimals is a presentation concern.

// All returns every transaction in insertion order.
func (s *Store) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// ByType returns all transactions of the given type, insertion order
// preserved.
func (s *Store) ByType(t models.TransactionType) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Transaction{}
	for _, txn := range s.transactions {
		if txn.Type == t {
			out = append(out, txn)
		}
	}
	return out
}

// ByDateRange returns transactions whose date falls between from and to
// inclusive, at day granularity. Both bounds are canonical YYYY-MM-DD
// strings, so the comparison is lexicographic. A non-nil type narrows the
// result further.
func (s *Store) ByDateRange(from, to string, t *models.TransactionType) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Transaction{}
	for _, txn := range s.transactions {
		if txn.Date < from || txn.Date > to {
			continue
		}
		if t != nil && txn.Type != *t {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// TotalByType sums the amounts of all transactions of the given type.
func (s *Store) TotalByType(t models.TransactionType) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, txn := range s.transactions {
		if txn.Type == t {
			total += txn.Amount
		}
	}
	return total
}

// Recent returns the n transactions with the most recent dates,
// descending. Ties keep their original collection order. If fewer than n
// exist, all are returned; n <= 0 yields an empty slice.
func (s *Store) Recent(n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}

	s.mu.RLock()
	sorted := make([]models.Transaction, len(s.transactions))
	copy(sorted, s.transactions)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// CategoryTotals maps category names to summed amounts for the given
// type. Categories with no matching transactions are omitted.
func (s *Store) CategoryTotals(t models.TransactionType) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := map[string]float64{}
	for _, txn := range s.transactions {
		if txn.Type == t {
			totals[txn.Category] += txn.Amount
		}
	}
	return totals
}
