// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/accountsvc/accountsvc/internal/cache"
	"github.com/accountsvc/accountsvc/internal/metrics"
	"github.com/accountsvc/accountsvc/internal/model"
	"github.com/accountsvc/accountsvc/internal/repository"
)

// Service errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("invalid email format")
)

// Email validation: local part, @, domain with at least one dot.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AccountStore provides durable storage and id assignment for accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	UpdateAccount(ctx context.Context, account *model.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}

// AccountCache caches account lookups by id.
type AccountCache interface {
	GetAccount(ctx context.Context, id int64) (*model.CachedAccount, error)
	SetAccount(ctx context.Context, account *model.Account) error
	DeleteAccount(ctx context.Context, id int64) error
	IsNegativelyCached(ctx context.Context, id int64) (bool, error)
	SetNegativeCache(ctx context.Context, id int64) error
}

// AccountService handles account business logic.
type AccountService struct {
	store   AccountStore
	cache   AccountCache
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
// The cache may be nil, in which case lookups always hit the store.
func NewAccountService(store AccountStore, accountCache AccountCache, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:   store,
		cache:   accountCache,
		metrics: recorder,
	}
}

// AccountInput defines the mutable fields of an account, as supplied by
// create and update requests.
type AccountInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  *model.Date
}

// CreateAccount validates the input and persists a new account.
// The store assigns the id.
func (s *AccountService) CreateAccount(ctx context.Context, input AccountInput) (*model.Account, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	dateJoined := model.Today()
	if input.DateJoined != nil && !input.DateJoined.IsZero() {
		dateJoined = *input.DateJoined
	}

	account := &model.Account{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		DateJoined:  dateJoined,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.metrics.IncAccountCreated()

	return account, nil
}

// GetAccount retrieves an account by id, cache-first when a cache is
// configured.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveLookupDuration(time.Since(start))
	}()

	if s.cache != nil {
		cached, err := s.cache.GetAccount(ctx, id)
		if err == nil {
			s.metrics.IncAccountCacheHit()
			return cached.ToAccount(id), nil
		}

		if errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.IncAccountCacheMiss()
			if isNegative, _ := s.cache.IsNegativelyCached(ctx, id); isNegative {
				return nil, ErrAccountNotFound
			}
		}
		// Redis errors fall through to the store.
	}

	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			if s.cache != nil {
				_ = s.cache.SetNegativeCache(ctx, id)
			}
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		// Backfill; eventual consistency is acceptable.
		_ = s.cache.SetAccount(ctx, account)
	}

	return account, nil
}

// ListAccounts retrieves all accounts.
// Ordering is the store's enumeration order and is not part of the contract.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.store.ListAccounts(ctx)
}

// UpdateAccount replaces the mutable fields of an existing account and
// persists the result. The id is never changed.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, input AccountInput) (*model.Account, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	account.Name = input.Name
	account.Email = input.Email
	account.Address = input.Address
	account.PhoneNumber = input.PhoneNumber
	if input.DateJoined != nil && !input.DateJoined.IsZero() {
		account.DateJoined = *input.DateJoined
	}

	if err := s.store.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	s.metrics.IncAccountUpdated()

	if s.cache != nil {
		_ = s.cache.DeleteAccount(ctx, id)
	}

	return account, nil
}

// DeleteAccount removes an account. Deleting an id with no record is not an
// error; the intent is already satisfied.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	err := s.store.DeleteAccount(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return err
	}

	if err == nil {
		s.metrics.IncAccountDeleted()
	}

	if s.cache != nil {
		_ = s.cache.DeleteAccount(ctx, id)
	}

	return nil
}

// validateInput checks the account fields. Only name is required; the email
// format check applies when an email is supplied.
func validateInput(input AccountInput) error {
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Email != "" && !emailRegex.MatchString(input.Email) {
		return ErrInvalidEmail
	}
	return nil
}
