package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aokihara/kashikari/internal/middleware"
	"github.com/aokihara/kashikari/internal/service"
)

func (h *Handlers) createTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[createTransactionRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	tx, err := h.ledger.Create(r.Context(), middleware.GetAccountID(r.Context()), req.PartnerID, service.TransactionInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTransactionView(tx))
}

func (h *Handlers) updateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[updateTransactionRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	tx, err := h.ledger.Update(r.Context(), middleware.GetAccountID(r.Context()), mux.Vars(r)["id"], service.TransactionInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTransactionView(tx))
}

func (h *Handlers) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Delete(r.Context(), middleware.GetAccountID(r.Context()), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) suggestions(w http.ResponseWriter, r *http.Request) {
	descriptions, err := h.ledger.Suggestions(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	if descriptions == nil {
		descriptions = []string{}
	}
	respondJSON(w, http.StatusOK, descriptions)
}
