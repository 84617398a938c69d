package handlers

import (
	"log"
	"net/http"

	"github.com/dagger983/Umpire11-Backend/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *payment.Service
}

func NewPaymentHandler(paymentService *payment.Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type CreateOrderRequest struct {
	// Amount in rupees; converted to paisa before it reaches the gateway.
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreateOrder initiates a payment order with the gateway
// @Summary Create payment order
// @Description Creates a capture-on-authorization order for the given amount and returns the gateway order id
// @Tags payments
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order amount"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := h.paymentService.CreateOrder(req.Amount)
	if err != nil {
		log.Printf("Error creating payment order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orderId": orderID})
}
