package handlers

import (
	"errors"
	"log"
	"net/http"

	request "servease/internal/adapter/http/dto/request"
	response "servease/internal/adapter/http/dto/response"
	"servease/internal/usecase"
	"servease/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for categories, services and actor
// registration.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CategoryRequest  true  "Category payload"
// @Success      201      {object}  response.CategoryResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	cat, err := h.usecase.CreateCategory(c.Request.Context(), c.GetHeader("X-Admin-ID"), payload.Name, payload.BasePrice, payload.MinTimeHours, payload.CommissionRate, payload.BookingRate, payload.TransactionRate)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] category created category_id=%s", cat.ID)

	c.JSON(http.StatusCreated, response.FromCategory(cat))
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Changes the rate configuration. Payments already created keep their frozen fees.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        category_id  path      string                   true  "Category ID"
// @Param        payload      body      request.CategoryRequest  true  "Category payload"
// @Success      200          {object}  response.CategoryResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /admin/categories/{category_id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	cat, err := h.usecase.UpdateCategory(c.Request.Context(), c.Param("category_id"), payload.Name, payload.BasePrice, payload.MinTimeHours, payload.CommissionRate, payload.BookingRate, payload.TransactionRate)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(cat))
}

// GetCategory godoc
// @Summary      Get a category
// @Tags         admin
// @Produce      json
// @Param        category_id  path      string  true  "Category ID"
// @Success      200          {object}  response.CategoryResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /admin/categories/{category_id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat, err := h.usecase.GetCategory(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(cat))
}

// RegisterProvider godoc
// @Summary      Register a provider
// @Description  Creates an unapproved provider in a category; admin approval makes its services bookable.
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegisterProviderRequest  true  "Provider payload"
// @Success      201      {object}  response.ProviderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /providers [post]
func (h *CatalogHandler) RegisterProvider(c *gin.Context) {
	var payload request.RegisterProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.RegisterProvider(c.Request.Context(), payload.CategoryID, payload.Name)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] provider registered provider_id=%s category_id=%s", p.ID, p.CategoryID)

	c.JSON(http.StatusCreated, response.FromProvider(p))
}

// RegisterCustomer godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegisterCustomerRequest  true  "Customer payload"
// @Success      201      {object}  response.CustomerResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CatalogHandler) RegisterCustomer(c *gin.Context) {
	var payload request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	cust, err := h.usecase.RegisterCustomer(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(cust))
}

// CreateService godoc
// @Summary      Create a service
// @Description  Registers an unapproved, inactive service. Price and duration must meet the category floor.
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        prov_id  path      string                        true  "Provider ID"
// @Param        payload  body      request.CreateServiceRequest  true  "Service payload"
// @Success      201      {object}  response.ServiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.CreateService(c.Request.Context(), c.Param("prov_id"), payload.Name, payload.Description, payload.Price, payload.DurationHours)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

// ActivateService godoc
// @Summary      Activate a service
// @Tags         providers
// @Produce      json
// @Param        prov_id     path      string  true  "Provider ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.ServiceResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/services/{service_id}/activate [patch]
func (h *CatalogHandler) ActivateService(c *gin.Context) {
	s, err := h.usecase.ActivateService(c.Request.Context(), c.Param("prov_id"), c.Param("service_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// DeactivateService godoc
// @Summary      Deactivate a service
// @Tags         providers
// @Produce      json
// @Param        prov_id     path      string  true  "Provider ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.ServiceResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/services/{service_id}/deactivate [patch]
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	s, err := h.usecase.DeactivateService(c.Request.Context(), c.Param("prov_id"), c.Param("service_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// ListProviderServices godoc
// @Summary      List a provider's services
// @Tags         providers
// @Produce      json
// @Param        prov_id  path      string  true  "Provider ID"
// @Success      200      {array}   response.ServiceResponse
// @Router       /providers/{prov_id}/services [get]
func (h *CatalogHandler) ListProviderServices(c *gin.Context) {
	services, err := h.usecase.ListProviderServices(c.Request.Context(), c.Param("prov_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryInput),
		errors.Is(err, usecase.ErrInvalidServiceInput),
		errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPriceBelowBase):
		return pkg.NewDomainErrorSimple("PRICE_BELOW_BASE", "Service price below category base price", http.StatusConflict)
	case errors.Is(err, usecase.ErrDurationBelowMin):
		return pkg.NewDomainErrorSimple("DURATION_BELOW_MIN", "Service duration below category minimum", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotApproved):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_APPROVED", "Service is not approved or is blocked", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
