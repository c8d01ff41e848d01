package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bankcore/customer-service/internal/models"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.Customer, error)
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error)
	Save(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	DeleteByID(ctx context.Context, id string) error
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, customer_type, document_type, document_number, names, last_name,
	mother_last_name, business_name, birthdate, phone_number, email, address,
	has_credit_card, created_at, updated_at, active`

// ExistsByDocumentNumber checks whether any customer, active or not, holds the document number.
func (r *customerRepository) ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE document_number = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, documentNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check document number existence: %w", err)
	}

	return exists, nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrCustomerNotFound("id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// GetByDocumentNumber retrieves a customer by document number
func (r *customerRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE document_number = $1`, customerColumns)

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, documentNumber))
	if err == sql.ErrNoRows {
		return nil, models.ErrCustomerNotFound("documentNumber", documentNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by document number: %w", err)
	}

	return customer, nil
}

// List retrieves customers with pagination and filtering
func (r *customerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error) {
	// Validate and set defaults
	models.ValidateAndSetDefaults(&filter.Page, &filter.PageSize)

	// Build query with filters
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE 1=1`, customerColumns)
	countQuery := `SELECT COUNT(*) FROM customers WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.CustomerType != "" {
		query += fmt.Sprintf(" AND customer_type = $%d", argPos)
		countQuery += fmt.Sprintf(" AND customer_type = $%d", argPos)
		args = append(args, filter.CustomerType)
		argPos++
	}

	if filter.DocumentNumber != "" {
		query += fmt.Sprintf(" AND document_number LIKE $%d", argPos)
		countQuery += fmt.Sprintf(" AND document_number LIKE $%d", argPos)
		args = append(args, filter.DocumentNumber+"%")
		argPos++
	}

	if filter.Active != nil {
		query += fmt.Sprintf(" AND active = $%d", argPos)
		countQuery += fmt.Sprintf(" AND active = $%d", argPos)
		args = append(args, *filter.Active)
		argPos++
	}

	// Get total count
	var totalCount int64
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	// Add pagination
	offset := models.CalculateOffset(filter.Page, filter.PageSize)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.PageSize, offset)

	// Execute query
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, totalCount, nil
}

// Save upserts a customer. A customer without an ID is inserted and assigned one;
// a customer with an ID has all mutable fields updated in place.
func (r *customerRepository) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if customer.ID == "" {
		return r.insert(ctx, customer)
	}
	return r.update(ctx, customer)
}

func (r *customerRepository) insert(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.ID = uuid.NewString()

	query := `
		INSERT INTO customers (id, customer_type, document_type, document_number, names,
			last_name, mother_last_name, business_name, birthdate, phone_number, email,
			address, has_credit_card, created_at, updated_at, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(
		ctx,
		query,
		customer.ID,
		string(customer.CustomerType),
		customer.DocumentType,
		customer.DocumentNumber,
		customer.Names,
		customer.LastName,
		customer.MotherLastName,
		customer.BusinessName,
		nullTime(customer.Birthdate),
		customer.PhoneNumber,
		customer.Email,
		customer.Address,
		customer.HasCreditCard,
		customer.CreatedAt,
		nullTime(customer.UpdatedAt),
		customer.Active,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query := `
		UPDATE customers
		SET customer_type = $1, document_type = $2, document_number = $3, names = $4,
			last_name = $5, mother_last_name = $6, business_name = $7, birthdate = $8,
			phone_number = $9, email = $10, address = $11, has_credit_card = $12,
			updated_at = $13, active = $14
		WHERE id = $15`

	result, err := r.db.ExecContext(
		ctx,
		query,
		string(customer.CustomerType),
		customer.DocumentType,
		customer.DocumentNumber,
		customer.Names,
		customer.LastName,
		customer.MotherLastName,
		customer.BusinessName,
		nullTime(customer.Birthdate),
		customer.PhoneNumber,
		customer.Email,
		customer.Address,
		customer.HasCreditCard,
		nullTime(customer.UpdatedAt),
		customer.Active,
		customer.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, models.ErrCustomerNotFound("id", customer.ID)
	}

	return customer, nil
}

// DeleteByID removes a customer row. Only the hard-delete lineage uses this;
// the lifecycle service soft-deletes through Save.
func (r *customerRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrCustomerNotFound("id", id)
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanCustomer
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(s scanner) (*models.Customer, error) {
	var (
		customer  models.Customer
		birthdate sql.NullTime
		updatedAt sql.NullTime
	)

	err := s.Scan(
		&customer.ID,
		&customer.CustomerType,
		&customer.DocumentType,
		&customer.DocumentNumber,
		&customer.Names,
		&customer.LastName,
		&customer.MotherLastName,
		&customer.BusinessName,
		&birthdate,
		&customer.PhoneNumber,
		&customer.Email,
		&customer.Address,
		&customer.HasCreditCard,
		&customer.CreatedAt,
		&updatedAt,
		&customer.Active,
	)
	if err != nil {
		return nil, err
	}

	if birthdate.Valid {
		customer.Birthdate = &birthdate.Time
	}
	if updatedAt.Valid {
		customer.UpdatedAt = &updatedAt.Time
	}

	return &customer, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
