package models

import "time"

// CustomerType classifies a customer in the banking system
type CustomerType string

// Known customer types
const (
	CustomerTypePersonal CustomerType = "PERSONAL"
	CustomerTypeBusiness CustomerType = "BUSINESS"
	CustomerTypeVIP      CustomerType = "VIP"
	CustomerTypePyme     CustomerType = "PYME"
)

// requiresCreditCard is fixed per variant at definition time. VIP and PYME
// accounts can only be opened by customers holding an active credit card.
var requiresCreditCard = map[CustomerType]bool{
	CustomerTypePersonal: false,
	CustomerTypeBusiness: false,
	CustomerTypeVIP:      true,
	CustomerTypePyme:     true,
}

// Valid checks if the customer type is a known variant
func (t CustomerType) Valid() bool {
	_, ok := requiresCreditCard[t]
	return ok
}

// RequiresCreditCard reports whether this customer type requires an active credit card.
func (t CustomerType) RequiresCreditCard() bool {
	return requiresCreditCard[t]
}

// Customer represents a bank customer, personal or business.
// Deleting a customer is a soft delete: Active flips to false and the record
// (including its document number, for uniqueness purposes) is retained.
type Customer struct {
	ID             string       `json:"id"`
	CustomerType   CustomerType `json:"customer_type"`
	DocumentType   string       `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	Names          string       `json:"names"`
	LastName       string       `json:"last_name"`
	MotherLastName string       `json:"mother_last_name"`
	BusinessName   string       `json:"business_name,omitempty"`
	Birthdate      *time.Time   `json:"birthdate,omitempty"`
	PhoneNumber    string       `json:"phone_number"`
	Email          string       `json:"email,omitempty"`
	Address        string       `json:"address,omitempty"`
	HasCreditCard  bool         `json:"has_credit_card"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      *time.Time   `json:"updated_at,omitempty"`
	Active         bool         `json:"active"`
}

// CanOpenPremiumAccounts reports whether the customer may hold a premium
// account type (VIP, PYME), i.e. has an active credit card.
func (c *Customer) CanOpenPremiumAccounts() bool {
	return c.HasCreditCard
}

// CustomerFilter holds filtering options for listing customers
type CustomerFilter struct {
	CustomerType   string
	DocumentNumber string
	Active         *bool
	Page           int
	PageSize       int
}
