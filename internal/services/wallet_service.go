package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

// WalletService handles wallet balance and top-up logic
type WalletService struct {
	repo   *repository.WalletRepository
	logger *logrus.Logger
}

// NewWalletService creates a new wallet service
func NewWalletService(repo *repository.WalletRepository, logger *logrus.Logger) *WalletService {
	return &WalletService{
		repo:   repo,
		logger: logger,
	}
}

// GetWallet returns the passenger's wallet, creating it on first access
func (s *WalletService) GetWallet(passengerID string) models.Wallet {
	return s.repo.Get(passengerID)
}

// TopUp credits the wallet with the requested amount
func (s *WalletService) TopUp(passengerID string, req *models.TopUpRequest) (models.Wallet, models.WalletTransaction, error) {
	if req.Amount <= 0 {
		return models.Wallet{}, models.WalletTransaction{}, models.ErrInvalidInput("top-up amount must be positive")
	}

	description := "Wallet top-up"
	if req.Method != "" {
		description = fmt.Sprintf("Wallet top-up via %s", req.Method)
	}

	wallet, txn := s.repo.Credit(passengerID, req.Amount, description)

	s.logger.WithFields(logrus.Fields{
		"passenger_id": passengerID,
		"amount":       req.Amount,
		"balance":      wallet.Balance,
	}).Info("Wallet topped up")

	return wallet, txn, nil
}

// Transactions returns the passenger's transaction history, newest first
func (s *WalletService) Transactions(passengerID string) []models.WalletTransaction {
	return s.repo.Transactions(passengerID)
}
