package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aokihara/kashikari/internal/middleware"
)

func (h *Handlers) listPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partners.List(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPartnerViews(partners))
}

func (h *Handlers) createPartner(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[createPartnerRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	partner, err := h.partners.Create(r.Context(), middleware.GetAccountID(r.Context()), req.Name, req.LinkedAccountID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toPartnerView(partner))
}

type statementResponse struct {
	Partner      partnerView       `json:"partner"`
	Transactions []transactionView `json:"transactions"`
	Balance      int64             `json:"balance"`
}

func (h *Handlers) partnerStatement(w http.ResponseWriter, r *http.Request) {
	partnerID := mux.Vars(r)["id"]

	statement, err := h.ledger.Statement(r.Context(), middleware.GetAccountID(r.Context()), partnerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, statementResponse{
		Partner:      toPartnerView(statement.Partner),
		Transactions: toTransactionViews(statement.Transactions),
		Balance:      statement.Balance,
	})
}
