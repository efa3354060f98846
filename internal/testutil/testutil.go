package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/accountsvc/accountsvc/internal/model"
	"github.com/accountsvc/accountsvc/internal/repository"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 910910

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// ResetAccountsSchema drops and recreates the accounts schema for tests.
func ResetAccountsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", "000001_accounts.down.sql")
	upPath := filepath.Join(root, "migrations", "000001_accounts.up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read down migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply down migration: %w", err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read up migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply up migration: %w", err)
	}

	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestAccount creates a test account with sensible defaults.
// The ID is left zero so persistence can assign it.
func NewTestAccount(t testing.TB, name string) *model.Account {
	t.Helper()
	now := time.Now().UTC()
	return &model.Account{
		Name:        name,
		Email:       UniqueEmail(name),
		Address:     "100 Test Lane",
		PhoneNumber: "555-0100",
		DateJoined:  model.NewDate(now),
	}
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// ============================================================================
// In-Memory Account Store
// ============================================================================

// InMemoryAccountStore is a hermetic store for service and handler tests.
// It assigns sequential ids and mimics the repository's error contract.
type InMemoryAccountStore struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]model.Account
}

// NewInMemoryAccountStore returns an empty in-memory store.
func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{
		nextID:   1,
		accounts: make(map[int64]model.Account),
	}
}

// CreateAccount assigns the next id and stores a copy of the account.
func (s *InMemoryAccountStore) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	account.ID = s.nextID
	account.CreatedAt = now
	account.UpdatedAt = now
	s.nextID++

	s.accounts[account.ID] = *account
	return nil
}

// GetAccountByID returns a copy of the stored account.
func (s *InMemoryAccountStore) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return &account, nil
}

// ListAccounts returns copies of all stored accounts ordered by id.
func (s *InMemoryAccountStore) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	accounts := make([]*model.Account, 0, len(ids))
	for _, id := range ids {
		account := s.accounts[id]
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

// UpdateAccount replaces the stored record for the account's id.
func (s *InMemoryAccountStore) UpdateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}

	account.CreatedAt = existing.CreatedAt
	account.UpdatedAt = time.Now().UTC()
	s.accounts[account.ID] = *account
	return nil
}

// DeleteAccount removes the record for the id.
func (s *InMemoryAccountStore) DeleteAccount(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(s.accounts, id)
	return nil
}

// Len reports the number of stored accounts.
func (s *InMemoryAccountStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}
