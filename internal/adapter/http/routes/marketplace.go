package routes

import (
	"servease/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathProviders = "/providers"
	PathBookings  = "/bookings"
)

func addMarketplaceRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, reportHandler *handlers.ReportHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", catalogHandler.RegisterCustomer)

		customers.POST("/:cust_id/bookings", bookingHandler.CreateBooking)
		customers.PATCH("/:cust_id/bookings/:booking_id/complete", bookingHandler.CompleteBooking)
		customers.POST("/:cust_id/bookings/:booking_id/review", bookingHandler.CreateReview)

		customers.GET("/:cust_id/payments/:payment_id", paymentHandler.GetPayment)
		customers.PATCH("/:cust_id/payments/:payment_id", paymentHandler.PayPayment)
		customers.DELETE("/:cust_id/payments/:payment_id", paymentHandler.CancelPayment)
	}

	providers := rg.Group(PathProviders)
	{
		providers.POST("", catalogHandler.RegisterProvider)

		providers.POST("/:prov_id/services", catalogHandler.CreateService)
		providers.GET("/:prov_id/services", catalogHandler.ListProviderServices)
		providers.PATCH("/:prov_id/services/:service_id/activate", catalogHandler.ActivateService)
		providers.PATCH("/:prov_id/services/:service_id/deactivate", catalogHandler.DeactivateService)

		providers.PATCH("/:prov_id/bookings/:booking_id/confirm", bookingHandler.ConfirmBooking)
		providers.PATCH("/:prov_id/bookings/:booking_id/close", bookingHandler.CloseBooking)
		providers.DELETE("/:prov_id/bookings/:booking_id", bookingHandler.RejectBooking)

		providers.GET("/:prov_id/reports/closed-bookings", reportHandler.ProviderClosedBookings)
		providers.GET("/:prov_id/earnings", reportHandler.GetProviderEarnings)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
	}
}
