package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDate_TruncatesToUTCMidnight(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-5", -5*3600)
	d := NewDate(time.Date(2024, 3, 15, 22, 45, 0, 0, loc))

	// 22:45 UTC-5 is 03:45 UTC the next day
	if d.String() != "2024-03-16" {
		t.Errorf("NewDate = %s, want 2024-03-16", d.String())
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("Date should have no time component, got %v", d.Time)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	original, err := ParseDate("2023-11-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if string(data) != `"2023-11-05"` {
		t.Errorf("Marshal = %s, want %q", data, `"2023-11-05"`)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !decoded.Equal(original.Time) {
		t.Errorf("Round trip mismatch: got %v, want %v", decoded, original)
	}
}

func TestDate_UnmarshalJSON_NullAndEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"null", `null`},
		{"empty string", `""`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d Date
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if !d.IsZero() {
				t.Errorf("Unmarshal(%s) = %v, want zero Date", tt.input, d)
			}
		})
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"not a string", `20231105`},
		{"wrong layout", `"11/05/2023"`},
		{"garbage", `"not-a-date"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d Date
			if err := json.Unmarshal([]byte(tt.input), &d); err == nil {
				t.Errorf("Unmarshal(%s) should fail", tt.input)
			}
		})
	}
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d Date
	if err := d.Scan(time.Date(2022, 7, 1, 13, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time) failed: %v", err)
	}
	if d.String() != "2022-07-01" {
		t.Errorf("Scan(time.Time) = %s, want 2022-07-01", d.String())
	}

	if err := d.Scan("2021-01-31"); err != nil {
		t.Fatalf("Scan(string) failed: %v", err)
	}
	if d.String() != "2021-01-31" {
		t.Errorf("Scan(string) = %s, want 2021-01-31", d.String())
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if !d.IsZero() {
		t.Error("Scan(nil) should produce zero Date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestAccount_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	original := Account{
		ID:          7,
		Name:        "Alice Smith",
		Email:       "alice@example.com",
		Address:     "42 Main St",
		PhoneNumber: "555-0100",
		DateJoined:  NewDate(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Account
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.ID != original.ID {
		t.Errorf("ID mismatch: got %d, want %d", decoded.ID, original.ID)
	}
	if decoded.Name != original.Name {
		t.Errorf("Name mismatch: got %q, want %q", decoded.Name, original.Name)
	}
	if decoded.Email != original.Email {
		t.Errorf("Email mismatch: got %q, want %q", decoded.Email, original.Email)
	}
	if decoded.Address != original.Address {
		t.Errorf("Address mismatch: got %q, want %q", decoded.Address, original.Address)
	}
	if decoded.PhoneNumber != original.PhoneNumber {
		t.Errorf("PhoneNumber mismatch: got %q, want %q", decoded.PhoneNumber, original.PhoneNumber)
	}
	if !decoded.DateJoined.Equal(original.DateJoined.Time) {
		t.Errorf("DateJoined mismatch: got %v, want %v", decoded.DateJoined, original.DateJoined)
	}
}

func TestCachedAccount_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)
	account := &Account{
		ID:          99,
		Name:        "Bob",
		Email:       "bob@example.com",
		Address:     "1 Side Rd",
		PhoneNumber: "555-0199",
		DateJoined:  NewDate(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	restored := account.ToCachedAccount().ToAccount(account.ID)

	if restored.ID != account.ID {
		t.Errorf("ID mismatch: got %d, want %d", restored.ID, account.ID)
	}
	if restored.Name != account.Name {
		t.Errorf("Name mismatch: got %q, want %q", restored.Name, account.Name)
	}
	if restored.Email != account.Email {
		t.Errorf("Email mismatch: got %q, want %q", restored.Email, account.Email)
	}
	if restored.Address != account.Address {
		t.Errorf("Address mismatch: got %q, want %q", restored.Address, account.Address)
	}
	if restored.PhoneNumber != account.PhoneNumber {
		t.Errorf("PhoneNumber mismatch: got %q, want %q", restored.PhoneNumber, account.PhoneNumber)
	}
	if !restored.DateJoined.Equal(account.DateJoined.Time) {
		t.Errorf("DateJoined mismatch: got %v, want %v", restored.DateJoined, account.DateJoined)
	}
	if !restored.CreatedAt.Equal(account.CreatedAt) {
		t.Errorf("CreatedAt mismatch: got %v, want %v", restored.CreatedAt, account.CreatedAt)
	}
	if !restored.UpdatedAt.Equal(account.UpdatedAt) {
		t.Errorf("UpdatedAt mismatch: got %v, want %v", restored.UpdatedAt, account.UpdatedAt)
	}
}

func TestCachedAccount_ZeroDateJoined(t *testing.T) {
	t.Parallel()

	account := &Account{ID: 1, Name: "x", Email: "x@example.com"}

	cached := account.ToCachedAccount()
	if cached.DateJoined != "" {
		t.Errorf("zero DateJoined should cache as empty string, got %q", cached.DateJoined)
	}

	restored := cached.ToAccount(1)
	if !restored.DateJoined.IsZero() {
		t.Errorf("empty cached date should restore as zero, got %v", restored.DateJoined)
	}
}
