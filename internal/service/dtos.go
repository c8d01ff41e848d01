package service

import (
	"time"

	"github.com/bankcore/customer-service/internal/models"
)

// CustomerRequest represents a request to create or update a customer
type CustomerRequest struct {
	CustomerType   models.CustomerType `json:"customer_type" validate:"required"`
	DocumentType   string              `json:"document_type" validate:"required"`
	DocumentNumber string              `json:"document_number" validate:"required"`
	Names          string              `json:"names" validate:"required"`
	LastName       string              `json:"last_name" validate:"required"`
	MotherLastName string              `json:"mother_last_name"`
	BusinessName   string              `json:"business_name"`
	Birthdate      *time.Time          `json:"birthdate,omitempty"`
	PhoneNumber    string              `json:"phone_number" validate:"required"`
	Email          string              `json:"email" validate:"omitempty,email"`
	Address        string              `json:"address"`
	HasCreditCard  *bool               `json:"has_credit_card,omitempty"`
}

// Validate performs domain validation on the customer request
func (r *CustomerRequest) Validate() error {
	if !r.CustomerType.Valid() {
		return models.ErrInvalidInput("invalid customer type: " + string(r.CustomerType))
	}
	return nil
}

// toCustomer builds a new customer record from the request.
// Defaults: no credit card unless stated, created now, active.
func (r *CustomerRequest) toCustomer() *models.Customer {
	hasCreditCard := false
	if r.HasCreditCard != nil {
		hasCreditCard = *r.HasCreditCard
	}

	return &models.Customer{
		CustomerType:   r.CustomerType,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Names:          r.Names,
		LastName:       r.LastName,
		MotherLastName: r.MotherLastName,
		BusinessName:   r.BusinessName,
		Birthdate:      r.Birthdate,
		PhoneNumber:    r.PhoneNumber,
		Email:          r.Email,
		Address:        r.Address,
		HasCreditCard:  hasCreditCard,
		CreatedAt:      time.Now().UTC(),
		Active:         true,
	}
}

// applyTo merges every mutable field from the request onto the existing
// record. ID, CreatedAt and Active are preserved; UpdatedAt is stamped.
func (r *CustomerRequest) applyTo(customer *models.Customer) {
	customer.CustomerType = r.CustomerType
	customer.DocumentType = r.DocumentType
	customer.DocumentNumber = r.DocumentNumber
	customer.Names = r.Names
	customer.LastName = r.LastName
	customer.MotherLastName = r.MotherLastName
	customer.BusinessName = r.BusinessName
	customer.Birthdate = r.Birthdate
	customer.PhoneNumber = r.PhoneNumber
	customer.Email = r.Email
	customer.Address = r.Address
	if r.HasCreditCard != nil {
		customer.HasCreditCard = *r.HasCreditCard
	}

	now := time.Now().UTC()
	customer.UpdatedAt = &now
}

// UpgradeCustomerRequest represents a request to upgrade a customer's type
type UpgradeCustomerRequest struct {
	CustomerType models.CustomerType `json:"customer_type" validate:"required"`
}

// Validate performs domain validation on the upgrade request
func (r *UpgradeCustomerRequest) Validate() error {
	if !r.CustomerType.Valid() {
		return models.ErrInvalidInput("invalid customer type: " + string(r.CustomerType))
	}
	return nil
}

// CustomerResponse is the caller-facing view of a customer record
type CustomerResponse struct {
	ID             string              `json:"id"`
	CustomerType   models.CustomerType `json:"customer_type"`
	DocumentType   string              `json:"document_type"`
	DocumentNumber string              `json:"document_number"`
	Names          string              `json:"names"`
	LastName       string              `json:"last_name"`
	MotherLastName string              `json:"mother_last_name"`
	BusinessName   string              `json:"business_name,omitempty"`
	Birthdate      *time.Time          `json:"birthdate,omitempty"`
	PhoneNumber    string              `json:"phone_number"`
	Email          string              `json:"email,omitempty"`
	Address        string              `json:"address,omitempty"`
	HasCreditCard  bool                `json:"has_credit_card"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      *time.Time          `json:"updated_at,omitempty"`
	Active         bool                `json:"active"`
}

// toResponse maps a customer record to its caller-facing view
func toResponse(c *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		CustomerType:   c.CustomerType,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		Names:          c.Names,
		LastName:       c.LastName,
		MotherLastName: c.MotherLastName,
		BusinessName:   c.BusinessName,
		Birthdate:      c.Birthdate,
		PhoneNumber:    c.PhoneNumber,
		Email:          c.Email,
		Address:        c.Address,
		HasCreditCard:  c.HasCreditCard,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Active:         c.Active,
	}
}

// CustomerListResult represents paginated customer list results
type CustomerListResult struct {
	Data       []*CustomerResponse     `json:"data"`
	Pagination models.PaginationResult `json:"pagination"`
}
