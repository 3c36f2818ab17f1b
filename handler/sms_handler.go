package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	smspkg "github.com/ramesh-vyboina/cluck-credit-tracker/sms"
)

// SMSHandler bundles dependencies for the transaction SMS endpoint.
type SMSHandler struct {
	service smspkg.Service
}

func NewSMSHandler(svc smspkg.Service) *SMSHandler {
	return &SMSHandler{service: svc}
}

type sendSMSPayload struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
}

// SendTransactionSMS texts the customer about a credit or repayment. Gateway
// failures come back as {status: "error", detail}; the request itself still
// succeeds.
func (h *SMSHandler) SendTransactionSMS() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p sendSMSPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.SendTransactionSMS(ctx, smspkg.SendRequest{
			Name:        p.Name,
			PhoneNumber: p.PhoneNumber,
			Amount:      p.Amount,
			Type:        smspkg.TransactionType(p.Type),
		})
		if err != nil {
			switch {
			case errors.Is(err, smspkg.ErrInvalidType):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send sms", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
