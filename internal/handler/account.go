package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/accountsvc/accountsvc/internal/handler/dto"
	"github.com/accountsvc/accountsvc/internal/service"
)

// jsonContentType is the only media type accepted for request bodies.
// The comparison is exact; parameters such as charset are rejected.
const jsonContentType = "application/json"

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	svc     *service.AccountService
	logger  *slog.Logger
	baseURL string
}

// NewAccountHandler creates a new AccountHandler.
// baseURL is used to build Location headers for created accounts.
func NewAccountHandler(svc *service.AccountService, logger *slog.Logger, baseURL string) *AccountHandler {
	return &AccountHandler{
		svc:     svc,
		logger:  logger,
		baseURL: baseURL,
	}
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != jsonContentType {
		h.writeError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return
	}

	var req dto.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	account, err := h.svc.CreateAccount(r.Context(), accountInput(req))
	if err != nil {
		h.handleServiceError(w, err, 0)
		return
	}

	h.logger.Info("account_created", "account_id", account.ID)

	w.Header().Set("Location", fmt.Sprintf("%s/accounts/%d", h.baseURL, account.ID))
	writeJSON(w, http.StatusCreated, dto.ToAccountResponse(account))
}

// List handles GET /accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, 0)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountListResponse(accounts))
}

// Read handles GET /accounts/{id}.
func (h *AccountHandler) Read(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	account, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(account))
}

// Update handles PUT /accounts/{id}.
// The existence check runs before the body is touched, so an unknown id is
// reported as 404 regardless of the payload.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.GetAccount(r.Context(), id); err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	if r.Header.Get("Content-Type") != jsonContentType {
		h.writeError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return
	}

	var req dto.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	account, err := h.svc.UpdateAccount(r.Context(), id, accountInput(req))
	if err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	h.logger.Info("account_updated", "account_id", account.ID)

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(account))
}

// Delete handles DELETE /accounts/{id}.
// Always returns 204; deleting a missing account satisfies the intent.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), id); err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	h.logger.Info("account_deleted", "account_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// accountID extracts and parses the id route parameter. The route pattern
// only admits digits, so a parse failure means the id overflows int64.
func (h *AccountHandler) accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND",
			fmt.Sprintf("Account with id [%s] could not be found.", raw))
		return 0, false
	}
	return id, true
}

// accountInput maps a request DTO onto the service input.
func accountInput(req dto.AccountRequest) service.AccountInput {
	return service.AccountInput{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateJoined:  req.DateJoined,
	}
}

// handleServiceError maps service errors to HTTP responses.
func (h *AccountHandler) handleServiceError(w http.ResponseWriter, err error, id int64) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		h.writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND",
			fmt.Sprintf("Account with id [%d] could not be found.", id))
	case errors.Is(err, service.ErrNameRequired):
		h.writeError(w, http.StatusBadRequest, "NAME_REQUIRED", "Account name is required")
	case errors.Is(err, service.ErrInvalidEmail):
		h.writeError(w, http.StatusBadRequest, "INVALID_EMAIL", "Account email is not a valid address")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *AccountHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
