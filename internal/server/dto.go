package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aokihara/kashikari/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeValid decodes a JSON request body and runs struct validation.
// Failures surface as models.ErrValidation so respondError maps them to 400.
func decodeValid[T any](r *http.Request) (*T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid request body", models.ErrValidation)
	}
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return &req, nil
}

type loginRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name            string `json:"name" validate:"required,max=50"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type createPartnerRequest struct {
	Name            string `json:"name" validate:"required,max=50"`
	LinkedAccountID string `json:"linkedAccountId"`
}

type createTransactionRequest struct {
	PartnerID   string `json:"partnerId" validate:"required"`
	Amount      int64  `json:"amount" validate:"required"`
	Description string `json:"description" validate:"max=100"`
	Date        string `json:"date" validate:"required"`
}

type updateTransactionRequest struct {
	Amount      int64  `json:"amount" validate:"required"`
	Description string `json:"description" validate:"max=100"`
	Date        string `json:"date" validate:"required"`
}

type updateGroupNameRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type joinRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}
