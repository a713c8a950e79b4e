package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	response "servease/internal/adapter/http/dto/response"
	"servease/internal/domain/entities"
	"servease/internal/usecase"
	"servease/pkg"

	"github.com/gin-gonic/gin"
)

// ModerationHandler exposes the admin approval and block actions for
// providers, services and customers.

type ModerationHandler struct {
	usecase usecase.IModerationUseCase
}

func NewModerationHandler(uc usecase.IModerationUseCase) *ModerationHandler {
	return &ModerationHandler{usecase: uc}
}

// ApproveProvider godoc
// @Summary      Approve a provider
// @Description  Grants approval on the first call; on a blocked provider it unblocks instead.
// @Tags         admin
// @Produce      json
// @Param        prov_id  path      string  true  "Provider ID"
// @Success      200      {object}  response.ProviderResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/providers/{prov_id}/approve [patch]
func (h *ModerationHandler) ApproveProvider(c *gin.Context) {
	h.providerAction(c, "approve", h.usecase.ApproveProvider)
}

// BlockProvider godoc
// @Summary      Block a provider
// @Description  Blocking keeps the approval flag so a later unblock restores the provider.
// @Tags         admin
// @Produce      json
// @Param        prov_id  path      string  true  "Provider ID"
// @Success      200      {object}  response.ProviderResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/providers/{prov_id}/block [patch]
func (h *ModerationHandler) BlockProvider(c *gin.Context) {
	h.providerAction(c, "block", h.usecase.BlockProvider)
}

// UnblockProvider godoc
// @Summary      Unblock a provider
// @Tags         admin
// @Produce      json
// @Param        prov_id  path      string  true  "Provider ID"
// @Success      200      {object}  response.ProviderResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/providers/{prov_id}/unblock [patch]
func (h *ModerationHandler) UnblockProvider(c *gin.Context) {
	h.providerAction(c, "unblock", h.usecase.UnblockProvider)
}

// ApproveService godoc
// @Summary      Approve a service
// @Description  The first approval also activates the service.
// @Tags         admin
// @Produce      json
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.ServiceResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /admin/services/{service_id}/approve [patch]
func (h *ModerationHandler) ApproveService(c *gin.Context) {
	h.serviceAction(c, "approve", h.usecase.ApproveService)
}

// BlockService godoc
// @Summary      Block a service
// @Tags         admin
// @Produce      json
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.ServiceResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /admin/services/{service_id}/block [patch]
func (h *ModerationHandler) BlockService(c *gin.Context) {
	h.serviceAction(c, "block", h.usecase.BlockService)
}

// UnblockService godoc
// @Summary      Unblock a service
// @Tags         admin
// @Produce      json
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.ServiceResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /admin/services/{service_id}/unblock [patch]
func (h *ModerationHandler) UnblockService(c *gin.Context) {
	h.serviceAction(c, "unblock", h.usecase.UnblockService)
}

// BlockCustomer godoc
// @Summary      Block a customer
// @Description  Blocked customers cannot create bookings until unblocked.
// @Tags         admin
// @Produce      json
// @Param        cust_id  path      string  true  "Customer ID"
// @Success      200      {object}  response.CustomerResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/customers/{cust_id}/block [patch]
func (h *ModerationHandler) BlockCustomer(c *gin.Context) {
	customerID := c.Param("cust_id")
	log.Printf("[moderation][handler] block customer start customer_id=%s", customerID)

	cust, err := h.usecase.BlockCustomer(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapModerationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(cust))
}

// UnblockCustomer godoc
// @Summary      Unblock a customer
// @Tags         admin
// @Produce      json
// @Param        cust_id  path      string  true  "Customer ID"
// @Success      200      {object}  response.CustomerResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/customers/{cust_id}/unblock [patch]
func (h *ModerationHandler) UnblockCustomer(c *gin.Context) {
	customerID := c.Param("cust_id")

	cust, err := h.usecase.UnblockCustomer(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapModerationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(cust))
}

func (h *ModerationHandler) providerAction(c *gin.Context, op string, run func(ctx context.Context, providerID string) (entities.Provider, error)) {
	providerID := c.Param("prov_id")
	log.Printf("[moderation][handler] %s provider start provider_id=%s", op, providerID)

	prov, err := run(c.Request.Context(), providerID)
	if err != nil {
		log.Printf("[moderation][handler] %s provider failed provider_id=%s err=%v", op, providerID, err)
		appErr := mapModerationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProvider(prov))
}

func (h *ModerationHandler) serviceAction(c *gin.Context, op string, run func(ctx context.Context, serviceID string) (entities.Service, error)) {
	serviceID := c.Param("service_id")
	log.Printf("[moderation][handler] %s service start service_id=%s", op, serviceID)

	svc, err := run(c.Request.Context(), serviceID)
	if err != nil {
		log.Printf("[moderation][handler] %s service failed service_id=%s err=%v", op, serviceID, err)
		appErr := mapModerationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapModerationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
