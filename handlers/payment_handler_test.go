package handlers

import (
	"net/http"
	"testing"

	"github.com/dagger983/Umpire11-Backend/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paymentRouter() *gin.Engine {
	h := NewPaymentHandler(payment.NewService("rzp_test_key", "secret"))

	r := gin.New()
	r.POST("/create-order", h.CreateOrder)
	return r
}

// Success and gateway-failure paths are covered against a fake order API in
// the payment package; here we only exercise request validation.

func TestCreateOrderEndpointMissingAmount(t *testing.T) {
	r := paymentRouter()

	w := performRequest(t, r, http.MethodPost, "/create-order", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpointNegativeAmount(t *testing.T) {
	r := paymentRouter()

	w := performRequest(t, r, http.MethodPost, "/create-order", gin.H{"amount": -10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
