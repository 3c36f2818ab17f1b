package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramesh-vyboina/cluck-credit-tracker/ledger"
	"github.com/ramesh-vyboina/cluck-credit-tracker/realtime"
	salepkg "github.com/ramesh-vyboina/cluck-credit-tracker/sale"
)

// SaleHandler bundles dependencies for sale-related HTTP handlers.
type SaleHandler struct {
	service salepkg.Service
	hub     *realtime.Hub
}

func NewSaleHandler(svc salepkg.Service, hub *realtime.Hub) *SaleHandler {
	return &SaleHandler{service: svc, hub: hub}
}

type recordSalePayload struct {
	ProductID  uint       `json:"product_id" binding:"required"`
	CustomerID uint       `json:"customer_id" binding:"required"`
	Quantity   int        `json:"quantity" binding:"required"`
	Date       *time.Time `json:"date"`
}

// RecordSale records a credit sale. The total is computed server-side from
// the product's current price.
func (h *SaleHandler) RecordSale() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p recordSalePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := salepkg.RecordSaleRequest{
			ProductID:  p.ProductID,
			CustomerID: p.CustomerID,
			Quantity:   p.Quantity,
		}
		if p.Date != nil {
			req.Date = *p.Date
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RecordSale(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, salepkg.ErrProductNotFound), errors.Is(err, salepkg.ErrCustomerNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, salepkg.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale", "detail": err.Error()})
			}
			return
		}
		if h.hub != nil {
			h.hub.Broadcast("sale.recorded", realtime.TransactionPayload{
				CustomerID: created.CustomerID,
				Type:       ledger.EntrySale,
				Amount:     created.TotalPrice,
			})
		}
		c.JSON(http.StatusOK, created)
	}
}

func (h *SaleHandler) ListSales() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListSales(ctx, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
