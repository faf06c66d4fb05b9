package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"customer-engine/internal/api/handler/dto"
	"customer-engine/internal/domain/customer"
	"customer-engine/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	create *customer.CreateCustomerUseCase
	get    *customer.GetCustomerUseCase
	update *customer.UpdateCustomerUseCase
	delete *customer.DeleteCustomerUseCase
	logger *slog.Logger
}

func NewCustomerHandler(
	create *customer.CreateCustomerUseCase,
	get *customer.GetCustomerUseCase,
	update *customer.UpdateCustomerUseCase,
	del *customer.DeleteCustomerUseCase,
	l *slog.Logger,
) *CustomerHandler {
	if create == nil || get == nil || update == nil || del == nil {
		panic("customer use cases cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		create: create,
		get:    get,
		update: update,
		delete: del,
		logger: l.With("component", "CustomerHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// respondResult writes an operation envelope, picking the status code from
// the envelope's success flag.
func respondResult(w http.ResponseWriter, result customer.OperationResult, successStatus, failureStatus int) {
	status := successStatus
	if !result.Success {
		status = failureStatus
	}
	respondJSON(w, status, result)
}

func getCustomerIDFromURL(r *http.Request) (string, error) {
	id := chi.URLParam(r, "customerID")
	if id == "" {
		return "", fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	return id, nil
}

// filterFromQuery builds a field filter from URL query parameters. Unknown
// parameters are rejected by the filter's own validation downstream.
func filterFromQuery(r *http.Request) customer.Filter {
	filter := customer.Filter{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		filter[key] = values[0]
	}
	return filter
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Creates a customer record after validating name, document number, birth date and email. Document number and email must be unique.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer creation request"
// @Success 201 {object} customer.OperationResult "Customer successfully created"
// @Failure 400 {object} customer.OperationResult "Validation or uniqueness failure"
// @Router /customers [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result := h.create.Execute(r.Context(), req.ToParams())
	if result.Success {
		h.logger.InfoContext(r.Context(), "Customer created successfully")
	}
	respondResult(w, result, http.StatusCreated, http.StatusBadRequest)
}

// CreateCustomers handles POST /customers/bulk
// @Summary Create several customers
// @Description Creates customers one by one and reports a per-record outcome. Earlier records in the batch count toward uniqueness checks for later ones.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body []dto.CreateCustomerRequest true "Batch of customer creation requests"
// @Success 200 {array} customer.OperationResult "Per-record outcomes"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Router /customers/bulk [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomers(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.CreateCustomerRequest
	if err := decodeJSON(r, &reqs); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	batch := make([]customer.Params, len(reqs))
	for i, req := range reqs {
		batch[i] = req.ToParams()
	}

	results := h.create.CreateMany(r.Context(), batch)
	h.logger.InfoContext(r.Context(), "Bulk customer creation processed", slog.Int("count", len(results)))
	respondJSON(w, http.StatusOK, results)
}

// GetCustomer handles GET /customers/{customerID}
// @Summary Retrieve customer details
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} customer.OperationResult "Customer details retrieved"
// @Failure 404 {object} customer.OperationResult "Customer not found"
// @Router /customers/{customerID} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	result := h.get.Execute(r.Context(), customerID)
	respondResult(w, result, http.StatusOK, http.StatusNotFound)
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Retrieves customers, optionally filtered by exact field values given as query parameters.
// @Tags Customers
// @Produce json
// @Param name query string false "Filter by name"
// @Param email query string false "Filter by email"
// @Param documentNum query string false "Filter by document number"
// @Success 200 {object} customer.OperationResult "List of customers"
// @Failure 400 {object} customer.OperationResult "Unknown filter field or storage failure"
// @Router /customers [get]
// @Security BearerAuth
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	result := h.get.FindAll(r.Context(), filterFromQuery(r))
	respondResult(w, result, http.StatusOK, http.StatusBadRequest)
}

// FindCustomerByField handles GET /customers/lookup
// @Summary Find one customer by a field value
// @Tags Customers
// @Produce json
// @Param field query string true "Field name" Enums(id, name, documentNum, dateBirthday, email)
// @Param value query string true "Value to match"
// @Success 200 {object} customer.OperationResult "Customer details retrieved"
// @Failure 404 {object} customer.OperationResult "No customer matched"
// @Router /customers/lookup [get]
// @Security BearerAuth
func (h *CustomerHandler) FindCustomerByField(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")
	if field == "" || value == "" {
		respondError(w, fmt.Errorf("%w: query parameters 'field' and 'value' are required", apperrors.ErrInvalidArgument))
		return
	}

	result := h.get.FindByField(r.Context(), field, value)
	respondResult(w, result, http.StatusOK, http.StatusNotFound)
}

// CountCustomers handles GET /customers/count
// @Summary Count customers
// @Tags Customers
// @Produce json
// @Param name query string false "Filter by name"
// @Param email query string false "Filter by email"
// @Success 200 {object} customer.OperationResult "Customer count"
// @Failure 400 {object} customer.OperationResult "Unknown filter field or storage failure"
// @Router /customers/count [get]
// @Security BearerAuth
func (h *CustomerHandler) CountCustomers(w http.ResponseWriter, r *http.Request) {
	result := h.get.Count(r.Context(), filterFromQuery(r))
	respondResult(w, result, http.StatusOK, http.StatusBadRequest)
}

// CustomerExists handles GET /customers/{customerID}/exists
// @Summary Check whether a customer exists
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} customer.OperationResult "Existence flag"
// @Failure 400 {object} customer.OperationResult "Storage failure"
// @Router /customers/{customerID}/exists [get]
// @Security BearerAuth
func (h *CustomerHandler) CustomerExists(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	result := h.get.ExistsByID(r.Context(), customerID)
	respondResult(w, result, http.StatusOK, http.StatusBadRequest)
}

// SearchCustomers handles POST /customers/search
// @Summary Search customers
// @Description Filters, sorts and projects customer records.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.SearchCustomersRequest true "Search request"
// @Success 200 {object} customer.OperationResult "Matching customers"
// @Failure 400 {object} customer.OperationResult "Unknown field or storage failure"
// @Router /customers/search [post]
// @Security BearerAuth
func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchCustomersRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result := h.get.Search(r.Context(), customer.Filter(req.Filter), req.ToOptions())
	respondResult(w, result, http.StatusOK, http.StatusBadRequest)
}

// UpdateCustomer handles PUT /customers/{customerID}
// @Summary Update a customer
// @Description Applies a partial update. Changing the email or document number to one held by another customer is rejected.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} customer.OperationResult "Customer updated"
// @Failure 400 {object} customer.OperationResult "Unknown customer, conflict or storage failure"
// @Router /customers/{customerID} [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	update, err := req.ToUpdate()
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid update payload", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result := h.update.Execute(r.Context(), customerID, update)
	respondResult(w, result, http.StatusOK, http.StatusBadRequest)
}

// UpdateCustomers handles PUT /customers
// @Summary Update every customer matching a filter
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.BulkUpdateRequest true "Filter and fields to update"
// @Success 200 {array} customer.OperationResult "Per-record outcomes"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Router /customers [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomers(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	update, err := req.Update.ToUpdate()
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid update payload", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	results := h.update.UpdateMany(r.Context(), customer.Filter(req.Filter), update)
	h.logger.InfoContext(r.Context(), "Bulk customer update processed", slog.Int("count", len(results)))
	respondJSON(w, http.StatusOK, results)
}

// DeleteCustomer handles DELETE /customers/{customerID}
// @Summary Delete a customer by ID
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} customer.OperationResult "Deleted customer record"
// @Failure 404 {object} customer.OperationResult "Customer not found"
// @Router /customers/{customerID} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	result := h.delete.Execute(r.Context(), customerID)
	respondResult(w, result, http.StatusOK, http.StatusNotFound)
}

// DeleteCustomerByDocument handles DELETE /customers/document/{documentNum}
// @Summary Delete a customer by document number
// @Tags Customers
// @Produce json
// @Param documentNum path string true "Document number"
// @Success 200 {object} customer.OperationResult "Deleted customer record"
// @Failure 404 {object} customer.OperationResult "Customer not found"
// @Router /customers/document/{documentNum} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomerByDocument(w http.ResponseWriter, r *http.Request) {
	documentNum := chi.URLParam(r, "documentNum")
	if documentNum == "" {
		respondError(w, fmt.Errorf("%w: documentNum not found in URL path", apperrors.ErrInvalidArgument))
		return
	}

	result := h.delete.ExecuteByDocumentNum(r.Context(), documentNum)
	respondResult(w, result, http.StatusOK, http.StatusNotFound)
}

// DeleteCustomers handles DELETE /customers
// @Summary Delete every customer matching a filter
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteRequest true "Filter selecting customers to delete"
// @Success 200 {object} customer.OperationResult "Deleted customer records"
// @Failure 400 {object} customer.OperationResult "Unknown filter field or storage failure"
// @Router /customers [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomers(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result := h.delete.DeleteMany(r.Context(), customer.Filter(req.Filter))
	respondResult(w, result, http.StatusOK, http.StatusBadRequest)
}
