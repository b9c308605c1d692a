package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phpedruo/mypocket/internal/api/transaction"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "01J0000000000000000000TEST",
		UserID:      "user-1",
		Type:        string(TransactionTypeExpense),
		Amount:      42.50,
		Description: "Weekly groceries",
		Date:        time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	now := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid expense", func(tx *Transaction) {}, nil},
		{"valid income", func(tx *Transaction) {
			tx.Type = string(TransactionTypeIncome)
		}, nil},
		{"valid recurring monthly", func(tx *Transaction) {
			tx.Recurring = true
			tx.Frequency = string(FrequencyMonthly)
		}, nil},
		{"unknown type", func(tx *Transaction) {
			tx.Type = "transfer"
		}, transaction.ErrInvalidTransactionType},
		{"zero amount", func(tx *Transaction) {
			tx.Amount = 0
		}, transaction.ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) {
			tx.Amount = -10
		}, transaction.ErrInvalidAmount},
		{"amount above cap", func(tx *Transaction) {
			tx.Amount = MaxTransactionAmount + 1
		}, transaction.ErrInvalidAmount},
		{"amount at cap", func(tx *Transaction) {
			tx.Amount = MaxTransactionAmount
		}, nil},
		{"description too short", func(tx *Transaction) {
			tx.Description = "ab"
		}, transaction.ErrInvalidDescription},
		{"description whitespace only counts trimmed", func(tx *Transaction) {
			tx.Description = "  a  "
		}, transaction.ErrInvalidDescription},
		{"description too long", func(tx *Transaction) {
			tx.Description = strings.Repeat("x", 201)
		}, transaction.ErrInvalidDescription},
		{"multibyte description counts runes not bytes", func(tx *Transaction) {
			// 150 runes, 300 bytes: within the 200-character bound.
			tx.Description = strings.Repeat("é", 150)
		}, nil},
		{"multibyte description too long", func(tx *Transaction) {
			tx.Description = strings.Repeat("é", 201)
		}, transaction.ErrInvalidDescription},
		{"multibyte description too short", func(tx *Transaction) {
			tx.Description = "éé"
		}, transaction.ErrInvalidDescription},
		{"zero date", func(tx *Transaction) {
			tx.Date = time.Time{}
		}, transaction.ErrInvalidDate},
		{"future date", func(tx *Transaction) {
			tx.Date = now.Add(24 * time.Hour)
		}, transaction.ErrDateInFuture},
		{"date exactly now", func(tx *Transaction) {
			tx.Date = now
		}, nil},
		{"recurring without frequency", func(tx *Transaction) {
			tx.Recurring = true
		}, transaction.ErrInvalidFrequency},
		{"recurring with unknown frequency", func(tx *Transaction) {
			tx.Recurring = true
			tx.Frequency = "weekly"
		}, transaction.ErrInvalidFrequency},
		{"frequency without recurring", func(tx *Transaction) {
			tx.Frequency = string(FrequencyYearly)
		}, transaction.ErrInvalidFrequency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(&tx)

			err := tx.Validate(now)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
