package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/phpedruo/mypocket/internal/api/transaction"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func IsValidFrequency(frequency string) bool {
	switch Frequency(frequency) {
	case FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

const MaxTransactionAmount = 999_999_999

// Transaction is one recorded money movement owned by a single user.
// CategoryName and IncomeSourceName are joined labels, never persisted on the
// transactions table itself.
type Transaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`
	Amount           float64   `json:"amount"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Recurring        bool      `json:"recurring"`
	Frequency        string    `json:"frequency,omitempty"`
	CategoryID       string    `json:"category_id,omitempty"`
	IncomeSourceID   string    `json:"income_source_id,omitempty"`
	CategoryName     string    `json:"category_name,omitempty"`
	IncomeSourceName string    `json:"income_source_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate checks the movement against a caller-supplied clock so create and
// update share one date policy: transaction dates never sit in the future.
func (t *Transaction) Validate(now time.Time) error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if t.Amount <= 0 || t.Amount > MaxTransactionAmount {
		return transaction.ErrInvalidAmount
	}

	description := strings.TrimSpace(t.Description)
	if n := utf8.RuneCountInString(description); n < 3 || n > 200 {
		return transaction.ErrInvalidDescription
	}

	if t.Date.IsZero() {
		return transaction.ErrInvalidDate
	}

	if t.Date.After(now) {
		return transaction.ErrDateInFuture
	}

	if t.Recurring {
		if !IsValidFrequency(t.Frequency) {
			return transaction.ErrInvalidFrequency
		}
	} else if t.Frequency != "" {
		return transaction.ErrInvalidFrequency
	}

	return nil
}

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type IncomeSource struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
