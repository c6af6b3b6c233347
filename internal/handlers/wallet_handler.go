package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/middleware"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/services"
)

// WalletHandler handles wallet balance and top-up requests
type WalletHandler struct {
	service *services.WalletService
	logger  *logrus.Logger
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(service *services.WalletService, logger *logrus.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		logger:  logger,
	}
}

// GetWallet handles GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet := h.service.GetWallet(middleware.PassengerID(c))
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"wallet": wallet,
	})
}

// TopUp handles POST /api/v1/wallet/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request format",
			"error":   err.Error(),
		})
		return
	}

	wallet, txn, err := h.service.TopUp(middleware.PassengerID(c), &req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
		h.logger.WithError(err).Error("Top-up failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to top up wallet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "Wallet topped up",
		"wallet":      wallet,
		"transaction": txn,
	})
}

// GetTransactions handles GET /api/v1/wallet/transactions
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	transactions := h.service.Transactions(middleware.PassengerID(c))
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"transactions": transactions,
		"count":        len(transactions),
	})
}
