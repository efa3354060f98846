package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/accountsvc/accountsvc/internal/model"
)

// Cache key prefixes and TTLs.
const (
	accountKeyPrefix  = "account:"
	negCacheKeySuffix = ":neg"

	// DefaultAccountTTL is the TTL for cached account data.
	DefaultAccountTTL = 24 * time.Hour

	// NegativeCacheTTL is the TTL for negative cache entries.
	NegativeCacheTTL = 5 * time.Minute
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// accountKey builds the Redis key for an account id.
func accountKey(id int64) string {
	return accountKeyPrefix + strconv.FormatInt(id, 10)
}

// GetAccount retrieves an account from cache by id.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetAccount(ctx context.Context, id int64) (*model.CachedAccount, error) {
	key := accountKey(id)

	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrCacheMiss
	}

	cached := &model.CachedAccount{
		Name:        result["name"],
		Email:       result["email"],
		Address:     result["address"],
		PhoneNumber: result["phone_number"],
		DateJoined:  result["date_joined"],
		CreatedAt:   result["created_at"],
		UpdatedAt:   result["updated_at"],
	}

	return cached, nil
}

// SetAccount stores an account in cache.
func (c *Cache) SetAccount(ctx context.Context, account *model.Account) error {
	key := accountKey(account.ID)
	cached := account.ToCachedAccount()

	fields := map[string]any{
		"name":         cached.Name,
		"email":        cached.Email,
		"address":      cached.Address,
		"phone_number": cached.PhoneNumber,
		"created_at":   cached.CreatedAt,
		"updated_at":   cached.UpdatedAt,
	}

	// Only set the date when it has a value
	if cached.DateJoined != "" {
		fields["date_joined"] = cached.DateJoined
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, DefaultAccountTTL)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cache account: %w", err)
	}

	// Remove negative cache if exists
	c.client.Del(ctx, key+negCacheKeySuffix)

	return nil
}

// DeleteAccount removes an account from cache.
func (c *Cache) DeleteAccount(ctx context.Context, id int64) error {
	key := accountKey(id)

	pipe := c.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.Del(ctx, key+negCacheKeySuffix)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete account from cache: %w", err)
	}

	return nil
}

// IsNegativelyCached checks if an id is in negative cache.
func (c *Cache) IsNegativelyCached(ctx context.Context, id int64) (bool, error) {
	key := accountKey(id) + negCacheKeySuffix

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check negative cache: %w", err)
	}

	return exists > 0, nil
}

// SetNegativeCache marks an id as not found.
func (c *Cache) SetNegativeCache(ctx context.Context, id int64) error {
	key := accountKey(id) + negCacheKeySuffix

	err := c.client.SetEx(ctx, key, "", NegativeCacheTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to set negative cache: %w", err)
	}

	return nil
}
