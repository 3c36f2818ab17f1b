package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smspkg "github.com/ramesh-vyboina/cluck-credit-tracker/sms"
)

func TestNewFast2SMSServiceMissingKey(t *testing.T) {
	_, err := NewFast2SMSService("", "")
	assert.ErrorIs(t, err, smspkg.ErrMissingAPIKey)
}

func TestSendTransactionSMSSent(t *testing.T) {
	var gotForm map[string]string
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"authorization": r.PostFormValue("authorization"),
			"message":       r.PostFormValue("message"),
			"language":      r.PostFormValue("language"),
			"route":         r.PostFormValue("route"),
			"numbers":       r.PostFormValue("numbers"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer gw.Close()

	svc, err := NewFast2SMSService("test-key", gw.URL)
	require.NoError(t, err)

	res, err := svc.SendTransactionSMS(context.Background(), smspkg.SendRequest{
		Name:        "Asha",
		PhoneNumber: "9990001111",
		Amount:      500,
		Type:        smspkg.TransactionCredit,
	})
	require.NoError(t, err)
	assert.Equal(t, smspkg.StatusSent, res.Status)
	assert.Empty(t, res.Detail)

	assert.Equal(t, "test-key", gotForm["authorization"])
	assert.Equal(t, "Asha has taken ₹500 credit.", gotForm["message"])
	assert.Equal(t, "english", gotForm["language"])
	assert.Equal(t, "q", gotForm["route"])
	assert.Equal(t, "9990001111", gotForm["numbers"])
}

func TestSendTransactionSMSGatewayFailure(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("quota exceeded"))
	}))
	defer gw.Close()

	svc, err := NewFast2SMSService("test-key", gw.URL)
	require.NoError(t, err)

	res, err := svc.SendTransactionSMS(context.Background(), smspkg.SendRequest{
		Name:        "Asha",
		PhoneNumber: "9990001111",
		Amount:      200,
		Type:        smspkg.TransactionRepayment,
	})
	// gateway failure is reported in the result, not raised
	require.NoError(t, err)
	assert.Equal(t, smspkg.StatusError, res.Status)
	assert.Equal(t, "quota exceeded", res.Detail)
}

func TestSendTransactionSMSNetworkError(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gw.Close() // connection refused from here on

	svc, err := NewFast2SMSService("test-key", gw.URL)
	require.NoError(t, err)

	res, err := svc.SendTransactionSMS(context.Background(), smspkg.SendRequest{
		Name:        "Asha",
		PhoneNumber: "9990001111",
		Amount:      200,
		Type:        smspkg.TransactionCredit,
	})
	require.NoError(t, err)
	assert.Equal(t, smspkg.StatusError, res.Status)
	assert.NotEmpty(t, res.Detail)
}

func TestSendTransactionSMSInvalidType(t *testing.T) {
	svc, err := NewFast2SMSService("test-key", "http://unused.invalid")
	require.NoError(t, err)

	_, err = svc.SendTransactionSMS(context.Background(), smspkg.SendRequest{
		Name: "Asha", PhoneNumber: "9990001111", Amount: 1, Type: "refund",
	})
	assert.ErrorIs(t, err, smspkg.ErrInvalidType)
}
