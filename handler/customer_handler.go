package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	customerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/customer"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.Service
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.Service) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type createCustomerPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CreateCustomer registers a customer.
func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RegisterCustomer(ctx, customerpkg.RegisterCustomerRequest{Name: p.Name, Phone: p.Phone})
		if err != nil {
			switch {
			case errors.Is(err, customerpkg.ErrPhoneTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

// GetCustomer returns a single customer or 404.
func (h *CustomerHandler) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.GetCustomer(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, customerpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// ListCustomers returns a paginated customer list.
func (h *CustomerHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListCustomers(ctx, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
