package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aokihara/kashikari/internal/middleware"
)

type balancesResponse struct {
	Balances []partnerBalanceView `json:"balances"`
	Total    int64                `json:"total"`
}

func (h *Handlers) partnerBalances(w http.ResponseWriter, r *http.Request) {
	balances, total, err := h.balances.PartnerBalances(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, balancesResponse{
		Balances: toPartnerBalanceViews(balances),
		Total:    total,
	})
}

type fromMembersResponse struct {
	Balances []memberBalanceView `json:"balances"`
	Total    int64               `json:"total"`
}

// fromMembers is the reverse view: what each fellow member has recorded
// toward the actor, aggregated from the members' own ledgers.
func (h *Handlers) fromMembers(w http.ResponseWriter, r *http.Request) {
	balances, total, err := h.balances.MemberBalancesForMe(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, fromMembersResponse{
		Balances: toMemberBalanceViews(balances),
		Total:    total,
	})
}

func (h *Handlers) fromMembersTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.balances.TransactionsForMe(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMemberTransactionViews(transactions))
}

type memberStatementResponse struct {
	Member       accountView             `json:"member"`
	Transactions []memberTransactionView `json:"transactions"`
	Balance      int64                   `json:"balance"`
}

func (h *Handlers) fromMember(w http.ResponseWriter, r *http.Request) {
	statement, err := h.balances.TransactionsFromMember(r.Context(),
		middleware.GetAccountID(r.Context()), mux.Vars(r)["memberId"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, memberStatementResponse{
		Member:       toAccountView(statement.Member),
		Transactions: toMemberTransactionViews(statement.Transactions),
		Balance:      statement.Balance,
	})
}

func (h *Handlers) members(w http.ResponseWriter, r *http.Request) {
	members, err := h.balances.Members(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMemberBalanceViews(members))
}

type dashboardResponse struct {
	Member   accountView          `json:"member"`
	Balances []partnerBalanceView `json:"balances"`
	Total    int64                `json:"total"`
}

func (h *Handlers) memberDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.balances.Dashboard(r.Context(),
		middleware.GetAccountID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboardResponse{
		Member:   toAccountView(dashboard.Member),
		Balances: toPartnerBalanceViews(dashboard.Balances),
		Total:    dashboard.Total,
	})
}
