package server

import (
	"net/http"

	"github.com/aokihara/kashikari/internal/middleware"
	"github.com/aokihara/kashikari/internal/service"
)

type loginResponse struct {
	Token   string      `json:"token"`
	Account accountView `json:"account"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[loginRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	account, token, err := h.identity.Login(r.Context(), req.AccountID, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token:   token,
		Account: toAccountView(account),
	})
}

// loginAccounts serves the account picker on the login screen. It exposes
// only ids and names, never roles or group structure.
func (h *Handlers) loginAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.identity.LoginAccounts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	picker := make([]pickerView, 0, len(accounts))
	for _, a := range accounts {
		picker = append(picker, pickerView{ID: a.ID, Name: a.Name})
	}
	respondJSON(w, http.StatusOK, picker)
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	account, err := h.identity.ResolveActor(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toAccountView(account))
}

func (h *Handlers) updateMe(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[updateProfileRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	account, err := h.identity.UpdateProfile(r.Context(), middleware.GetAccountID(r.Context()), service.ProfileUpdate{
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toAccountView(account))
}
