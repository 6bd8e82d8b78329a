// internal/handlers/currency.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ateliermarket/storefront-backend/internal/services"
	"github.com/ateliermarket/storefront-backend/internal/utils"
)

type CurrencyHandler struct {
	currencyService *services.CurrencyService
	rates           map[string]float64
}

func NewCurrencyHandler(currencyService *services.CurrencyService, rates map[string]float64) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
		rates:           rates,
	}
}

// GET /api/currency
func (h *CurrencyHandler) GetCurrencies(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"canonical":  h.currencyService.Canonical(),
		"currencies": h.currencyService.Codes(),
		"rates":      h.rates,
	})
}
