// Package model defines domain entities for the application.
package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// It marshals as "YYYY-MM-DD" and maps to the SQL date type.
type Date struct {
	time.Time
}

// NewDate truncates t to a UTC calendar date.
func NewDate(t time.Time) Date {
	u := t.UTC()
	return Date{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC date.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. Null and the empty string
// decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so Date can be read from a date column.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Value implements driver.Valuer for writing Date to a date column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Account represents a customer account record.
// The ID is assigned by the database on insert and is immutable afterwards.
type Account struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	DateJoined  Date      `json:"date_joined"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CachedAccount represents account data stored in Redis.
// Uses string types for Redis hash compatibility.
type CachedAccount struct {
	Name        string `redis:"name"`
	Email       string `redis:"email"`
	Address     string `redis:"address"`
	PhoneNumber string `redis:"phone_number"`
	DateJoined  string `redis:"date_joined"` // YYYY-MM-DD or empty
	CreatedAt   string `redis:"created_at"`  // Unix timestamp
	UpdatedAt   string `redis:"updated_at"`  // Unix timestamp
}

// ToAccount converts CachedAccount to the Account domain model.
func (c *CachedAccount) ToAccount(id int64) *Account {
	account := &Account{
		ID:          id,
		Name:        c.Name,
		Email:       c.Email,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
	}

	if c.DateJoined != "" {
		if d, err := ParseDate(c.DateJoined); err == nil {
			account.DateJoined = d
		}
	}

	if c.CreatedAt != "" {
		if ts, err := strconv.ParseInt(c.CreatedAt, 10, 64); err == nil {
			account.CreatedAt = time.Unix(ts, 0).UTC()
		}
	}

	if c.UpdatedAt != "" {
		if ts, err := strconv.ParseInt(c.UpdatedAt, 10, 64); err == nil {
			account.UpdatedAt = time.Unix(ts, 0).UTC()
		}
	}

	return account
}

// ToCachedAccount converts an Account to its Redis representation.
func (a *Account) ToCachedAccount() *CachedAccount {
	cached := &CachedAccount{
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   strconv.FormatInt(a.CreatedAt.Unix(), 10),
		UpdatedAt:   strconv.FormatInt(a.UpdatedAt.Unix(), 10),
	}

	if !a.DateJoined.IsZero() {
		cached.DateJoined = a.DateJoined.String()
	}

	return cached
}
