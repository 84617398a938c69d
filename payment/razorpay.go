// Package payment wraps the Razorpay order-creation API. One best-effort
// attempt per request; gateway internals never reach API clients.
package payment

import (
	"errors"
	"fmt"
	"math/rand"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrGateway is returned for every provider-side failure.
var ErrGateway = errors.New("failed to create order")

const gatewayTimeoutSeconds = 10

// orderAPI matches razorpay's order resource so tests can substitute a fake.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Service struct {
	orders orderAPI
}

func NewService(keyID, keySecret string) *Service {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(gatewayTimeoutSeconds)

	return &Service{
		orders: client.Order,
	}
}

// CreateOrder asks the gateway for a capture-on-authorization order and
// returns its id. The amount arrives in rupees and is sent in paisa.
func (s *Service) CreateOrder(amount float64) (string, error) {
	data := map[string]interface{}{
		"amount":          int64(amount * 100),
		"currency":        "INR",
		"receipt":         receiptToken(),
		"payment_capture": 1,
	}

	body, err := s.orders.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("%w: gateway response missing order id", ErrGateway)
	}

	return orderID, nil
}

const receiptAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func receiptToken() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = receiptAlphabet[rand.Intn(len(receiptAlphabet))]
	}
	return "receipt_" + string(b)
}
