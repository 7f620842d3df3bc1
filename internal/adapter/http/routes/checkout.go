package routes

import (
	"pawart_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathArtworks = "/artworks"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, artworkHandler *handlers.ArtworkHandler) {
	artworks := rg.Group(PathArtworks)
	{
		artworks.POST("", artworkHandler.GenerateVariants)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/sessions", checkoutHandler.StartSession)
		checkout.GET("/sessions/:session_id", checkoutHandler.GetSession)
		checkout.PUT("/sessions/:session_id", checkoutHandler.SubmitDetails)
		checkout.POST("/sessions/:session_id/shipping", checkoutHandler.AttachShipping)
		checkout.POST("/sessions/:session_id/pay", checkoutHandler.InitiatePayment)
		checkout.POST("/sessions/:session_id/callback", checkoutHandler.WidgetCallback)
		checkout.POST("/sessions/:session_id/ack", checkoutHandler.AcknowledgeFailure)
		checkout.POST("/confirm", checkoutHandler.ConfirmRedirect)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", checkoutHandler.GetOrder)
	}
}
