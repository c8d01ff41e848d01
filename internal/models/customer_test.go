package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerTypeRequiresCreditCard(t *testing.T) {
	tests := []struct {
		customerType CustomerType
		required     bool
	}{
		{CustomerTypePersonal, false},
		{CustomerTypeBusiness, false},
		{CustomerTypeVIP, true},
		{CustomerTypePyme, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.customerType), func(t *testing.T) {
			assert.True(t, tt.customerType.Valid())
			assert.Equal(t, tt.required, tt.customerType.RequiresCreditCard())
		})
	}
}

func TestCustomerTypeValid(t *testing.T) {
	assert.False(t, CustomerType("GOLD").Valid())
	assert.False(t, CustomerType("").Valid())
	// Unknown variants never require a credit card.
	assert.False(t, CustomerType("GOLD").RequiresCreditCard())
}

func TestCanOpenPremiumAccounts(t *testing.T) {
	customer := &Customer{HasCreditCard: false}
	assert.False(t, customer.CanOpenPremiumAccounts())

	customer.HasCreditCard = true
	assert.True(t, customer.CanOpenPremiumAccounts())
}

func TestNewLifecycleEvent(t *testing.T) {
	customer := &Customer{ID: "abc", DocumentNumber: "12345678"}
	event := NewLifecycleEvent(EventCustomerCreated, customer)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventCustomerCreated, event.EventType)
	assert.Equal(t, "Customer", event.EntityType)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, customer, event.Payload)

	// Each event gets its own id.
	other := NewLifecycleEvent(EventCustomerDeleted, customer)
	assert.NotEqual(t, event.EventID, other.EventID)
}
