package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bankcore/customer-service/internal/models"
	"github.com/bankcore/customer-service/internal/queue"
	"github.com/bankcore/customer-service/internal/repository"
)

// publishTimeout bounds each fire-and-forget event send once the request
// context is out of the picture.
const publishTimeout = 5 * time.Second

// CustomerService handles customer lifecycle business logic
type CustomerService interface {
	Create(ctx context.Context, req *CustomerRequest) (*CustomerResponse, error)
	GetByID(ctx context.Context, id string) (*CustomerResponse, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*CustomerResponse, error)
	List(ctx context.Context, filter models.CustomerFilter) (*CustomerListResult, error)
	Update(ctx context.Context, id string, req *CustomerRequest) (*CustomerResponse, error)
	Delete(ctx context.Context, id string) error
	Upgrade(ctx context.Context, id string, req *UpgradeCustomerRequest) (*CustomerResponse, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	validator    *CustomerValidator
	publisher    queue.Client
	logger       *slog.Logger
}

// NewCustomerService creates a new customer lifecycle service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	validator *CustomerValidator,
	publisher queue.Client,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		validator:    validator,
		publisher:    publisher,
		logger:       logger,
	}
}

// Create validates the request, persists a new customer and publishes a
// CUSTOMER_CREATED event. No store write happens until validation fully passes.
func (s *customerService) Create(ctx context.Context, req *CustomerRequest) (*CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.validator.ValidateCreate(ctx, req); err != nil {
		return nil, err
	}

	customer := req.toCustomer()

	// Premium eligibility is checked against the constructed record, after
	// defaults are applied and before anything is written.
	if err := s.validator.ValidateCreditCardRule(customer); err != nil {
		return nil, err
	}

	saved, err := s.customerRepo.Save(ctx, customer)
	if err != nil {
		s.logger.Error("failed to create customer",
			slog.String("document_number", req.DocumentNumber),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.String("customer_id", saved.ID),
		slog.String("document_number", saved.DocumentNumber),
	)

	s.publishEvent(models.EventCustomerCreated, saved)

	return toResponse(saved), nil
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toResponse(customer), nil
}

// GetByDocumentNumber retrieves a customer by document number
func (s *customerService) GetByDocumentNumber(ctx context.Context, documentNumber string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return nil, err
	}

	return toResponse(customer), nil
}

// List retrieves customers with pagination
func (s *customerService) List(ctx context.Context, filter models.CustomerFilter) (*CustomerListResult, error) {
	customers, totalCount, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	models.ValidateAndSetDefaults(&filter.Page, &filter.PageSize)

	responses := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toResponse(c)
	}

	return &CustomerListResult{
		Data:       responses,
		Pagination: models.NewPaginationResult(filter.Page, filter.PageSize, totalCount),
	}, nil
}

// Update loads the existing record, validates the request against it, merges
// the mutable fields, persists and publishes a CUSTOMER_UPDATED event.
func (s *customerService) Update(ctx context.Context, id string, req *CustomerRequest) (*CustomerResponse, error) {
	existing, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.validator.ValidateUpdate(ctx, existing, req); err != nil {
		return nil, err
	}

	req.applyTo(existing)

	// The credit-card rule is re-checked against the merged record, so an
	// update cannot slip a premium type in without a card.
	if err := s.validator.ValidateCreditCardRule(existing); err != nil {
		return nil, err
	}

	saved, err := s.customerRepo.Save(ctx, existing)
	if err != nil {
		s.logger.Error("failed to update customer",
			slog.String("customer_id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.Info("customer updated",
		slog.String("customer_id", saved.ID),
	)

	s.publishEvent(models.EventCustomerUpdated, saved)

	return toResponse(saved), nil
}

// Delete soft-deletes a customer: the record flips to inactive and is
// retained, its document number stays in the uniqueness index. Publishes a
// CUSTOMER_DELETED event with the inactive record as payload.
func (s *customerService) Delete(ctx context.Context, id string) error {
	existing, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Active = false
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	saved, err := s.customerRepo.Save(ctx, existing)
	if err != nil {
		s.logger.Error("failed to delete customer",
			slog.String("customer_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted",
		slog.String("customer_id", id),
	)

	s.publishEvent(models.EventCustomerDeleted, saved)

	return nil
}

// Upgrade changes a customer's type after checking the credit-card rule
// against the target type. Document fields are not re-validated and no
// lifecycle event is published for this path.
func (s *customerService) Upgrade(ctx context.Context, id string, req *UpgradeCustomerRequest) (*CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateUpgrade(existing, req.CustomerType); err != nil {
		return nil, err
	}

	existing.CustomerType = req.CustomerType
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	saved, err := s.customerRepo.Save(ctx, existing)
	if err != nil {
		s.logger.Error("failed to upgrade customer",
			slog.String("customer_id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to upgrade customer: %w", err)
	}

	s.logger.Info("customer upgraded",
		slog.String("customer_id", saved.ID),
		slog.String("customer_type", string(saved.CustomerType)),
	)

	return toResponse(saved), nil
}

// publishEvent attempts the event send exactly once per successful mutation,
// without blocking the caller. A failed send is logged and discarded:
// persistence, not notification, is the durability boundary.
func (s *customerService) publishEvent(eventType string, customer *models.Customer) {
	snapshot := *customer
	event := models.NewLifecycleEvent(eventType, &snapshot)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.publisher.Publish(ctx, snapshot.ID, event); err != nil {
			s.logger.Error("failed to publish lifecycle event",
				slog.String("event_type", eventType),
				slog.String("customer_id", snapshot.ID),
				slog.String("error", err.Error()),
			)
			return
		}

		s.logger.Info("lifecycle event published",
			slog.String("event_type", eventType),
			slog.String("customer_id", snapshot.ID),
		)
	}()
}
