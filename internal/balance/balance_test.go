package balance

import (
	"testing"

	"github.com/aokihara/kashikari/internal/storage"
)

func TestSortPartners_MagnitudeDescending(t *testing.T) {
	balances := []storage.PartnerBalance{
		{PartnerID: "1", PartnerName: "P1", Balance: 300},
		{PartnerID: "2", PartnerName: "P2", Balance: -1000},
		{PartnerID: "3", PartnerName: "P3", Balance: 0},
	}

	SortPartners(balances)

	want := []string{"P2", "P1", "P3"}
	for i, name := range want {
		if balances[i].PartnerName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, balances[i].PartnerName)
		}
	}
}

func TestSortPartners_TieBreaksByName(t *testing.T) {
	balances := []storage.PartnerBalance{
		{PartnerID: "1", PartnerName: "Zoe", Balance: -500},
		{PartnerID: "2", PartnerName: "Amy", Balance: 500},
	}

	SortPartners(balances)

	if balances[0].PartnerName != "Amy" {
		t.Errorf("equal magnitude should sort by name, got %s first", balances[0].PartnerName)
	}
}

func TestTotalPartners(t *testing.T) {
	balances := []storage.PartnerBalance{
		{Balance: 1000},
		{Balance: -300},
		{Balance: 0},
	}
	if total := TotalPartners(balances); total != 700 {
		t.Errorf("total: expected 700, got %d", total)
	}
	if total := TotalPartners(nil); total != 0 {
		t.Errorf("empty total: expected 0, got %d", total)
	}
}

func TestSortMembers(t *testing.T) {
	balances := []storage.MemberBalance{
		{AccountID: "a", Name: "Alice", Balance: 100},
		{AccountID: "b", Name: "Bob", Balance: -900},
	}

	SortMembers(balances)

	if balances[0].Name != "Bob" {
		t.Errorf("expected Bob first, got %s", balances[0].Name)
	}
	if total := TotalMembers(balances); total != -800 {
		t.Errorf("total: expected -800, got %d", total)
	}
}
