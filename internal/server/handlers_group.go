package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aokihara/kashikari/internal/middleware"
)

type groupInfoResponse struct {
	Group   groupView     `json:"group"`
	Members []accountView `json:"members"`
}

func (h *Handlers) groupInfo(w http.ResponseWriter, r *http.Request) {
	group, members, err := h.groups.Info(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groupInfoResponse{
		Group:   toGroupView(group),
		Members: toAccountViews(members),
	})
}

func (h *Handlers) updateGroupName(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[updateGroupNameRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.groups.UpdateGroupName(r.Context(), middleware.GetAccountID(r.Context()), req.Name); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) regenerateInviteCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.groups.RegenerateInviteCode(r.Context(), middleware.GetAccountID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"inviteCode": code})
}

func (h *Handlers) removeMember(w http.ResponseWriter, r *http.Request) {
	if err := h.groups.RemoveMember(r.Context(), middleware.GetAccountID(r.Context()), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// inviteLookup is public: it confirms a code and reveals the group name so
// the join page can greet the invitee, nothing more.
func (h *Handlers) inviteLookup(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.GroupByInviteCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"groupName": group.Name})
}

func (h *Handlers) join(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[joinRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	account, err := h.groups.Join(r.Context(), mux.Vars(r)["code"], req.Name, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toAccountView(account))
}
