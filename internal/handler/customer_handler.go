package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bankcore/customer-service/internal/models"
	"github.com/bankcore/customer-service/internal/service"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Create handles POST /api/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CustomerRequest
	if err := decode(r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, customer)
}

// List handles GET /api/customers. Restricted to administrators.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := RequireRole(r.Context(), RoleAdmin); err != nil {
		identity := IdentityFromContext(r.Context())
		h.logger.Warn("list customers denied",
			slog.String("user_id", identity.UserID),
		)
		handleError(w, err, h.logger)
		return
	}

	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))

	filter := models.CustomerFilter{
		CustomerType:   query.Get("customer_type"),
		DocumentNumber: query.Get("document_number"),
		Page:           page,
		PageSize:       pageSize,
	}

	if activeParam := query.Get("active"); activeParam != "" {
		active, err := strconv.ParseBool(activeParam)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "active must be true or false")
			return
		}
		filter.Active = &active
	}

	result, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}

// GetByID handles GET /api/customers/{id}
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}

// GetByDocumentNumber handles GET /api/customers/document/{documentNumber}
func (h *CustomerHandler) GetByDocumentNumber(w http.ResponseWriter, r *http.Request) {
	documentNumber := chi.URLParam(r, "documentNumber")

	customer, err := h.customerService.GetByDocumentNumber(r.Context(), documentNumber)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}

// Update handles PUT /api/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req service.CustomerRequest
	if err := decode(r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}

	customer, err := h.customerService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}

// Delete handles DELETE /api/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondNoContent(w)
}

// Upgrade handles PUT /api/customers/upgrade/{id}
func (h *CustomerHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req service.UpgradeCustomerRequest
	if err := decode(r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}

	customer, err := h.customerService.Upgrade(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}
