// Package balance holds the pure ordering and totaling rules for balance
// lists. Aggregation itself happens in the store (exact integer SUM); this
// package decides how the resulting lists are presented.
package balance

import (
	"sort"

	"github.com/aokihara/kashikari/internal/storage"
)

// TotalPartners sums a per-partner balance list. An empty list totals to 0 —
// a settled ledger, not an absent one.
func TotalPartners(balances []storage.PartnerBalance) int64 {
	var total int64
	for _, b := range balances {
		total += b.Balance
	}
	return total
}

// TotalMembers sums a per-member balance list.
func TotalMembers(balances []storage.MemberBalance) int64 {
	var total int64
	for _, b := range balances {
		total += b.Balance
	}
	return total
}

// SortPartners orders a balance list by absolute balance descending, so the
// largest outstanding debts and credits come first. Ties break by name, then
// id, keeping the order deterministic.
func SortPartners(balances []storage.PartnerBalance) {
	sort.Slice(balances, func(i, j int) bool {
		ai, aj := abs(balances[i].Balance), abs(balances[j].Balance)
		if ai != aj {
			return ai > aj
		}
		if balances[i].PartnerName != balances[j].PartnerName {
			return balances[i].PartnerName < balances[j].PartnerName
		}
		return balances[i].PartnerID < balances[j].PartnerID
	})
}

// SortMembers orders a member balance list the same way as SortPartners.
func SortMembers(balances []storage.MemberBalance) {
	sort.Slice(balances, func(i, j int) bool {
		ai, aj := abs(balances[i].Balance), abs(balances[j].Balance)
		if ai != aj {
			return ai > aj
		}
		if balances[i].Name != balances[j].Name {
			return balances[i].Name < balances[j].Name
		}
		return balances[i].AccountID < balances[j].AccountID
	})
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
