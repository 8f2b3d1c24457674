package server

import (
	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// Response shapes. Timestamps are unix seconds; dates are YYYY-MM-DD strings.

type accountView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupID   string `json:"groupId"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

func toAccountView(a *models.Account) accountView {
	return accountView{
		ID:        a.ID,
		Name:      a.Name,
		GroupID:   a.GroupID,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

func toAccountViews(accounts []*models.Account) []accountView {
	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, toAccountView(a))
	}
	return views
}

// pickerView is the minimal account identity for the login screen.
type pickerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type groupView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"inviteCode"`
	CreatedAt  int64  `json:"createdAt"`
}

func toGroupView(g *models.Group) groupView {
	return groupView{
		ID:         g.ID,
		Name:       g.Name,
		InviteCode: g.InviteCode,
		CreatedAt:  g.CreatedAt,
	}
}

type partnerView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	LinkedAccountID string `json:"linkedAccountId,omitempty"`
	CreatedAt       int64  `json:"createdAt"`
}

func toPartnerView(p *models.Partner) partnerView {
	return partnerView{
		ID:              p.ID,
		Name:            p.Name,
		LinkedAccountID: p.LinkedAccountID,
		CreatedAt:       p.CreatedAt,
	}
}

func toPartnerViews(partners []*models.Partner) []partnerView {
	views := make([]partnerView, 0, len(partners))
	for _, p := range partners {
		views = append(views, toPartnerView(p))
	}
	return views
}

type transactionView struct {
	ID          string `json:"id"`
	PartnerID   string `json:"partnerId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func toTransactionView(t *models.Transaction) transactionView {
	return transactionView{
		ID:          t.ID,
		PartnerID:   t.PartnerID,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTransactionViews(transactions []*models.Transaction) []transactionView {
	views := make([]transactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, toTransactionView(t))
	}
	return views
}

type partnerBalanceView struct {
	PartnerID   string `json:"partnerId"`
	PartnerName string `json:"partnerName"`
	Balance     int64  `json:"balance"`
}

func toPartnerBalanceViews(balances []storage.PartnerBalance) []partnerBalanceView {
	views := make([]partnerBalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, partnerBalanceView{
			PartnerID:   b.PartnerID,
			PartnerName: b.PartnerName,
			Balance:     b.Balance,
		})
	}
	return views
}

type memberBalanceView struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Balance   int64  `json:"balance"`
}

func toMemberBalanceViews(balances []storage.MemberBalance) []memberBalanceView {
	views := make([]memberBalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, memberBalanceView{
			AccountID: b.AccountID,
			Name:      b.Name,
			Balance:   b.Balance,
		})
	}
	return views
}

type memberTransactionView struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	MemberID    string `json:"memberId"`
	MemberName  string `json:"memberName"`
}

func toMemberTransactionViews(transactions []storage.TransactionFromMember) []memberTransactionView {
	views := make([]memberTransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, memberTransactionView{
			ID:          t.ID,
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.Date,
			MemberID:    t.MemberID,
			MemberName:  t.MemberName,
		})
	}
	return views
}
