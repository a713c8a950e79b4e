package handlers

import (
	"encoding/csv"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"servease/internal/usecase"
	"servease/pkg"

	"github.com/gin-gonic/gin"
)

var closedBookingsHeader = []string{
	"booking_id", "service_name", "customer_name", "book_date", "closed_date",
	"amount", "commission_fee", "final_provider_amount",
}

// ReportHandler serves the read-only export endpoints. The closed bookings
// export is streamed row by row as CSV so the response never buffers the
// full result set.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ProviderClosedBookings godoc
// @Summary      Export a provider's closed bookings
// @Description  Streams the provider's closed bookings as CSV.
// @Tags         reports
// @Produce      text/csv
// @Param        prov_id  path  string  true  "Provider ID"
// @Success      200  {string}  string  "CSV stream"
// @Failure      500  {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/reports/closed-bookings [get]
func (h *ReportHandler) ProviderClosedBookings(c *gin.Context) {
	h.streamClosedBookings(c, c.Param("prov_id"))
}

// AdminClosedBookings godoc
// @Summary      Export all closed bookings
// @Description  Streams every provider's closed bookings as CSV.
// @Tags         admin
// @Produce      text/csv
// @Success      200  {string}  string  "CSV stream"
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/reports/closed-bookings [get]
func (h *ReportHandler) AdminClosedBookings(c *gin.Context) {
	h.streamClosedBookings(c, "")
}

// GetProviderEarnings godoc
// @Summary      Get a provider's earnings summary
// @Description  Aggregates closed bookings and reviews at read time.
// @Tags         reports
// @Produce      json
// @Param        prov_id  path      string  true  "Provider ID"
// @Success      200      {object}  usecase.ProviderEarnings
// @Failure      400      {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/earnings [get]
func (h *ReportHandler) GetProviderEarnings(c *gin.Context) {
	providerID := c.Param("prov_id")

	earnings, err := h.usecase.GetProviderEarnings(c.Request.Context(), providerID)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, earnings)
}

func (h *ReportHandler) streamClosedBookings(c *gin.Context, providerID string) {
	log.Printf("[report][handler] closed bookings export start provider_id=%q", providerID)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="closed_bookings.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(closedBookingsHeader); err != nil {
		log.Printf("[report][handler] closed bookings export aborted err=%v", err)
		return
	}

	rows := 0
	err := h.usecase.StreamClosedBookings(c.Request.Context(), providerID, func(row usecase.ClosedBookingRow) error {
		rows++
		return w.Write([]string{
			row.BookingID,
			row.ServiceName,
			row.CustomerName,
			row.BookDate.Format(time.RFC3339),
			formatCSVTime(row.ClosedDate),
			strconv.FormatInt(row.Amount, 10),
			strconv.FormatInt(row.CommissionFee, 10),
			strconv.FormatInt(row.FinalProviderAmount, 10),
		})
	})
	if err != nil {
		// Headers are already on the wire; a truncated body is the only
		// signal left for the client.
		log.Printf("[report][handler] closed bookings export aborted rows=%d err=%v", rows, err)
		return
	}

	w.Flush()
	log.Printf("[report][handler] closed bookings export done provider_id=%q rows=%d", providerID, rows)
}

func formatCSVTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
