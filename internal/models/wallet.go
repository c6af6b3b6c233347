package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes wallet credits from debits
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Wallet represents a passenger's in-app balance
type Wallet struct {
	PassengerID string    `json:"passenger_id"`
	Balance     int       `json:"balance"` // LKR
	UpdatedAt   time.Time `json:"updated_at"`
}

// WalletTransaction represents one credit or debit against a wallet
type WalletTransaction struct {
	ID          uuid.UUID       `json:"id"`
	PassengerID string          `json:"passenger_id"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"` // LKR, always positive
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TopUpRequest adds funds to a wallet
type TopUpRequest struct {
	Amount int    `json:"amount" binding:"required,gt=0"`
	Method string `json:"method"` // card, bank, cash-agent; informational only
}
