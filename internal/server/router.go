package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aokihara/kashikari/internal/auth"
	"github.com/aokihara/kashikari/internal/config"
	"github.com/aokihara/kashikari/internal/middleware"
)

// NewRouter assembles the route table. Everything under /api/v1 requires a
// bearer token except login, the account picker and the invite endpoints.
func NewRouter(h *Handlers, jwtManager *auth.JWTManager, cfg config.HTTPConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics)
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	public := api.NewRoute().Subrouter()
	public.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
	public.HandleFunc("/auth/accounts", h.loginAccounts).Methods(http.MethodGet)
	public.HandleFunc("/invites/{code}", h.inviteLookup).Methods(http.MethodGet)
	public.HandleFunc("/invites/{code}/join", h.join).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(jwtManager))

	protected.HandleFunc("/me", h.me).Methods(http.MethodGet)
	protected.HandleFunc("/me", h.updateMe).Methods(http.MethodPut)

	protected.HandleFunc("/partners", h.listPartners).Methods(http.MethodGet)
	protected.HandleFunc("/partners", h.createPartner).Methods(http.MethodPost)
	protected.HandleFunc("/partners/{id}/statement", h.partnerStatement).Methods(http.MethodGet)

	protected.HandleFunc("/balances", h.partnerBalances).Methods(http.MethodGet)

	protected.HandleFunc("/transactions", h.createTransaction).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/suggestions", h.suggestions).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/{id}", h.updateTransaction).Methods(http.MethodPut)
	protected.HandleFunc("/transactions/{id}", h.deleteTransaction).Methods(http.MethodDelete)

	protected.HandleFunc("/from-members", h.fromMembers).Methods(http.MethodGet)
	protected.HandleFunc("/from-members/transactions", h.fromMembersTransactions).Methods(http.MethodGet)
	protected.HandleFunc("/from-members/{memberId}", h.fromMember).Methods(http.MethodGet)

	protected.HandleFunc("/members", h.members).Methods(http.MethodGet)
	protected.HandleFunc("/members/{id}/dashboard", h.memberDashboard).Methods(http.MethodGet)

	protected.HandleFunc("/group", h.groupInfo).Methods(http.MethodGet)
	protected.HandleFunc("/group/name", h.updateGroupName).Methods(http.MethodPut)
	protected.HandleFunc("/group/invite-code", h.regenerateInviteCode).Methods(http.MethodPost)
	protected.HandleFunc("/group/members/{id}", h.removeMember).Methods(http.MethodDelete)

	return r
}
