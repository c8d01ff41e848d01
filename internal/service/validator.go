package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bankcore/customer-service/internal/models"
	"github.com/bankcore/customer-service/internal/repository"
)

// CustomerValidator runs the ordered validation pipeline for customer
// mutations: document type, document length, document format, document
// uniqueness, then the credit-card business rule. Stages short-circuit on the
// first failure; only the uniqueness stage reads from the store.
type CustomerValidator struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerValidator creates a new customer validator
func NewCustomerValidator(customerRepo repository.CustomerRepository, logger *slog.Logger) *CustomerValidator {
	return &CustomerValidator{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ValidateDocument runs the type, length and format stages against the request.
func (v *CustomerValidator) ValidateDocument(req *CustomerRequest) (models.DocumentType, error) {
	docType, ok := models.DocumentTypeFromCode(req.DocumentType)
	if !ok {
		return models.DocumentType{}, models.ErrInvalidDocumentType(req.DocumentType)
	}

	if !docType.ValidLength(req.DocumentNumber) {
		return docType, models.ErrInvalidDocumentLength(docType, len(req.DocumentNumber))
	}

	if !docType.ValidFormat(req.DocumentNumber) {
		return docType, models.ErrInvalidDocumentFormat(docType)
	}

	return docType, nil
}

// ValidateCreate runs the document stages plus the uniqueness check against
// the request alone. No store write happens until this passes.
func (v *CustomerValidator) ValidateCreate(ctx context.Context, req *CustomerRequest) error {
	if _, err := v.ValidateDocument(req); err != nil {
		return err
	}

	exists, err := v.customerRepo.ExistsByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return fmt.Errorf("failed to check document number uniqueness: %w", err)
	}
	if exists {
		v.logger.Warn("document number already exists",
			slog.String("document_number", req.DocumentNumber),
		)
		return models.ErrDuplicateDocument(req.DocumentNumber)
	}

	return nil
}

// ValidateUpdate runs the document stages against the request and checks
// uniqueness only when the document number differs from the existing record's.
// An unchanged number never triggers a false "already exists" against itself.
func (v *CustomerValidator) ValidateUpdate(ctx context.Context, existing *models.Customer, req *CustomerRequest) error {
	if _, err := v.ValidateDocument(req); err != nil {
		return err
	}

	if existing.DocumentNumber == req.DocumentNumber {
		return nil
	}

	exists, err := v.customerRepo.ExistsByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return fmt.Errorf("failed to check document number uniqueness: %w", err)
	}
	if exists {
		v.logger.Warn("document number already exists",
			slog.String("document_number", req.DocumentNumber),
		)
		return models.ErrDuplicateDocument(req.DocumentNumber)
	}

	return nil
}

// ValidateCreditCardRule checks the premium-eligibility rule against a
// constructed or merged record.
func (v *CustomerValidator) ValidateCreditCardRule(customer *models.Customer) error {
	if customer.CustomerType.RequiresCreditCard() && !customer.CanOpenPremiumAccounts() {
		return models.ErrCreditCardRequired(customer.CustomerType)
	}
	return nil
}

// ValidateUpgrade checks the premium-eligibility rule against the target type,
// using the existing record's credit-card state, before the type changes.
func (v *CustomerValidator) ValidateUpgrade(customer *models.Customer, newType models.CustomerType) error {
	if newType.RequiresCreditCard() && !customer.CanOpenPremiumAccounts() {
		return models.ErrCreditCardRequired(newType)
	}
	return nil
}
