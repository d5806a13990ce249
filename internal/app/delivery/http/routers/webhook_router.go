package routers

import (
	"lidio-service/internal/app/delivery/http/controllers"
	"lidio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentNotificationController *controllers.PaymentNotificationController) {
	router.Use(middlewares.NotificationRateLimiter().Limit)
	router.Use(middlewares.BodyBuffer)

	// POST /webhooks/lidio/payment-notification
	router.Post("/lidio/payment-notification", paymentNotificationController.HandlePaymentNotification)
}
