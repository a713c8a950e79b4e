package routes

import (
	"servease/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, moderationHandler *handlers.ModerationHandler, reportHandler *handlers.ReportHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.PUT("/categories/:category_id", catalogHandler.UpdateCategory)
		admin.GET("/categories/:category_id", catalogHandler.GetCategory)

		admin.PATCH("/providers/:prov_id/approve", moderationHandler.ApproveProvider)
		admin.PATCH("/providers/:prov_id/block", moderationHandler.BlockProvider)
		admin.PATCH("/providers/:prov_id/unblock", moderationHandler.UnblockProvider)

		admin.PATCH("/services/:service_id/approve", moderationHandler.ApproveService)
		admin.PATCH("/services/:service_id/block", moderationHandler.BlockService)
		admin.PATCH("/services/:service_id/unblock", moderationHandler.UnblockService)

		admin.PATCH("/customers/:cust_id/block", moderationHandler.BlockCustomer)
		admin.PATCH("/customers/:cust_id/unblock", moderationHandler.UnblockCustomer)

		admin.GET("/reports/closed-bookings", reportHandler.AdminClosedBookings)
	}
}
