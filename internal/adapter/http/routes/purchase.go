package routes

import (
	"learnhub/internal/adapter/http/handlers"
	"learnhub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathPurchase = "/purchase"

func addPurchaseRoutes(rg *gin.RouterGroup, purchaseHandler *handlers.PurchaseHandler, webhookHandler *handlers.WebhookHandler) {
	purchase := rg.Group(PathPurchase)
	{
		// Gateway delivery and reporting carry no buyer context.
		purchase.POST("/callback", webhookHandler.HandleCallback)
		purchase.GET("", purchaseHandler.ListCompletedPurchases)

		authed := purchase.Group("", middleware.RequireUser())
		authed.POST("/create-checkout-session", purchaseHandler.CreateCheckoutSession)
		authed.GET("/course/:course_id/detail-with-status", purchaseHandler.GetCourseDetailWithStatus)
	}
}
