package payment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderAPI struct {
	gotData map[string]interface{}
	resp    map[string]interface{}
	err     error
}

func (f *fakeOrderAPI) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	f.gotData = data
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestCreateOrderSendsPaisa(t *testing.T) {
	fake := &fakeOrderAPI{resp: map[string]interface{}{"id": "order_abc123"}}
	svc := &Service{orders: fake}

	orderID, err := svc.CreateOrder(499)
	require.NoError(t, err)
	assert.Equal(t, "order_abc123", orderID)

	assert.Equal(t, int64(49900), fake.gotData["amount"])
	assert.Equal(t, "INR", fake.gotData["currency"])
	assert.Equal(t, 1, fake.gotData["payment_capture"])

	receipt, ok := fake.gotData["receipt"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(receipt, "receipt_"))
	assert.Len(t, receipt, len("receipt_")+8)
}

func TestCreateOrderGatewayError(t *testing.T) {
	fake := &fakeOrderAPI{err: errors.New("dial tcp: i/o timeout")}
	svc := &Service{orders: fake}

	_, err := svc.CreateOrder(100)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestCreateOrderMissingID(t *testing.T) {
	fake := &fakeOrderAPI{resp: map[string]interface{}{"status": "created"}}
	svc := &Service{orders: fake}

	_, err := svc.CreateOrder(100)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestReceiptTokensVary(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[receiptToken()] = true
	}
	assert.Greater(t, len(seen), 1)
}
