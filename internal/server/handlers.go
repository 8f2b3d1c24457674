// Package server exposes the ledger services over JSON REST.
package server

import (
	"net/http"

	"github.com/aokihara/kashikari/internal/service"
)

// Handlers holds the HTTP handlers and their service dependencies.
type Handlers struct {
	identity *service.IdentityService
	partners *service.PartnerService
	ledger   *service.LedgerService
	balances *service.BalanceService
	groups   *service.GroupService
}

// NewHandlers wires the services into a handler set.
func NewHandlers(
	identity *service.IdentityService,
	partners *service.PartnerService,
	ledger *service.LedgerService,
	balances *service.BalanceService,
	groups *service.GroupService,
) *Handlers {
	return &Handlers{
		identity: identity,
		partners: partners,
		ledger:   ledger,
		balances: balances,
		groups:   groups,
	}
}

func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
