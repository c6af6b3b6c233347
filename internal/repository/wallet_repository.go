package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
)

// WalletRepository keeps per-passenger balances and transaction history in
// memory. Wallets are created lazily with the configured starting balance.
type WalletRepository struct {
	mu             sync.Mutex
	initialBalance int
	balances       map[string]int
	updated        map[string]time.Time
	transactions   map[string][]models.WalletTransaction
}

// NewWalletRepository creates a wallet repository
func NewWalletRepository(initialBalance int) *WalletRepository {
	return &WalletRepository{
		initialBalance: initialBalance,
		balances:       make(map[string]int),
		updated:        make(map[string]time.Time),
		transactions:   make(map[string][]models.WalletTransaction),
	}
}

// Get returns the passenger's wallet, creating it on first access
func (r *WalletRepository) Get(passengerID string) models.Wallet {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure(passengerID)
	return models.Wallet{
		PassengerID: passengerID,
		Balance:     r.balances[passengerID],
		UpdatedAt:   r.updated[passengerID],
	}
}

// Credit adds funds to the wallet and records the transaction
func (r *WalletRepository) Credit(passengerID string, amount int, description string) (models.Wallet, models.WalletTransaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure(passengerID)

	r.balances[passengerID] += amount
	txn := r.record(passengerID, models.TransactionCredit, amount, description)

	return models.Wallet{
		PassengerID: passengerID,
		Balance:     r.balances[passengerID],
		UpdatedAt:   r.updated[passengerID],
	}, txn
}

// Debit removes funds from the wallet. Returns ErrInsufficientBalance when
// the balance cannot cover the amount; the wallet is left untouched.
func (r *WalletRepository) Debit(passengerID string, amount int, description string) (models.Wallet, models.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure(passengerID)

	if r.balances[passengerID] < amount {
		return models.Wallet{}, models.WalletTransaction{}, ErrInsufficientBalance
	}

	r.balances[passengerID] -= amount
	txn := r.record(passengerID, models.TransactionDebit, amount, description)

	return models.Wallet{
		PassengerID: passengerID,
		Balance:     r.balances[passengerID],
		UpdatedAt:   r.updated[passengerID],
	}, txn, nil
}

// Transactions returns the passenger's transaction history, newest first
func (r *WalletRepository) Transactions(passengerID string) []models.WalletTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure(passengerID)

	history := r.transactions[passengerID]
	out := make([]models.WalletTransaction, len(history))
	for i, txn := range history {
		out[len(history)-1-i] = txn
	}
	return out
}

func (r *WalletRepository) ensure(passengerID string) {
	if _, ok := r.balances[passengerID]; ok {
		return
	}
	r.balances[passengerID] = r.initialBalance
	r.updated[passengerID] = time.Now()
}

func (r *WalletRepository) record(passengerID string, txnType models.TransactionType, amount int, description string) models.WalletTransaction {
	txn := models.WalletTransaction{
		ID:          uuid.New(),
		PassengerID: passengerID,
		Type:        txnType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	r.transactions[passengerID] = append(r.transactions[passengerID], txn)
	r.updated[passengerID] = txn.CreatedAt
	return txn
}
