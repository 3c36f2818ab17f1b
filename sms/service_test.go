package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCredit(t *testing.T) {
	msg, err := Message(SendRequest{Name: "Asha", Amount: 500, Type: TransactionCredit})
	require.NoError(t, err)
	assert.Equal(t, "Asha has taken ₹500 credit.", msg)
}

func TestMessageRepayment(t *testing.T) {
	msg, err := Message(SendRequest{Name: "Asha", Amount: 250.5, Type: TransactionRepayment})
	require.NoError(t, err)
	assert.Equal(t, "Asha has repaid ₹250.5.", msg)
}

func TestMessageInvalidType(t *testing.T) {
	_, err := Message(SendRequest{Name: "Asha", Amount: 1, Type: "refund"})
	assert.ErrorIs(t, err, ErrInvalidType)
}
