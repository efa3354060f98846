// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/accountsvc/accountsvc/internal/model"
)

// AccountRequest represents the request body for creating or updating an
// account. The same shape serves both; update replaces all mutable fields.
type AccountRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Address     string      `json:"address,omitempty"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	DateJoined  *model.Date `json:"date_joined,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	DateJoined  model.Date `json:"date_joined"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToAccountResponse converts an Account model to AccountResponse DTO.
func ToAccountResponse(account *model.Account) *AccountResponse {
	return &AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		Address:     account.Address,
		PhoneNumber: account.PhoneNumber,
		DateJoined:  account.DateJoined,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

// ToAccountListResponse converts a slice of Account models to response DTOs.
// An empty slice encodes as [] rather than null.
func ToAccountListResponse(accounts []*model.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, *ToAccountResponse(account))
	}
	return responses
}
