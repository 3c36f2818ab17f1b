package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ledgerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/ledger"
	"github.com/ramesh-vyboina/cluck-credit-tracker/realtime"
)

// LedgerHandler bundles dependencies for order, payment and statement
// handlers.
type LedgerHandler struct {
	service ledgerpkg.Service
	hub     *realtime.Hub
}

func NewLedgerHandler(svc ledgerpkg.Service, hub *realtime.Hub) *LedgerHandler {
	return &LedgerHandler{service: svc, hub: hub}
}

type recordOrderPayload struct {
	CustomerID uint      `json:"customer_id" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Amount     float64   `json:"amount" binding:"required"`
	Paid       bool      `json:"paid"`
}

func (h *LedgerHandler) RecordOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p recordOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RecordOrder(ctx, ledgerpkg.RecordOrderRequest{
			CustomerID: p.CustomerID,
			Date:       p.Date,
			Amount:     p.Amount,
			Paid:       p.Paid,
		})
		if err != nil {
			switch {
			case errors.Is(err, ledgerpkg.ErrCustomerNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record order", "detail": err.Error()})
			}
			return
		}
		if h.hub != nil {
			h.hub.Broadcast("order.recorded", realtime.TransactionPayload{
				CustomerID: created.CustomerID,
				Type:       ledgerpkg.EntryOrder,
				Amount:     created.Amount,
			})
		}
		c.JSON(http.StatusOK, created)
	}
}

type recordPaymentPayload struct {
	CustomerID uint       `json:"customer_id" binding:"required"`
	Amount     float64    `json:"amount" binding:"required"`
	Date       *time.Time `json:"date"`
}

func (h *LedgerHandler) RecordPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p recordPaymentPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := ledgerpkg.RecordPaymentRequest{CustomerID: p.CustomerID, Amount: p.Amount}
		if p.Date != nil {
			req.Date = *p.Date
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RecordPayment(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, ledgerpkg.ErrCustomerNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment", "detail": err.Error()})
			}
			return
		}
		if h.hub != nil {
			h.hub.Broadcast("payment.recorded", realtime.TransactionPayload{
				CustomerID: created.CustomerID,
				Type:       ledgerpkg.EntryPayment,
				Amount:     created.Amount,
			})
		}
		c.JSON(http.StatusOK, created)
	}
}

// Statement returns the customer's chronological ledger with running
// balances.
func (h *LedgerHandler) Statement() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		st, err := h.service.Statement(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, ledgerpkg.ErrCustomerNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build statement", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// StatementCSV streams the same ledger as a CSV attachment.
func (h *LedgerHandler) StatementCSV() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		st, err := h.service.Statement(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, ledgerpkg.ErrCustomerNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build statement", "detail": err.Error()})
			}
			return
		}
		var buf bytes.Buffer
		if err := ledgerpkg.WriteCSV(&buf, st.Transactions); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode statement", "detail": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", ledgerpkg.CSVFileName(id)))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	}
}
