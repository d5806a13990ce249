package routers

import (
	"lidio-service/internal/app/delivery/http/controllers"
	"lidio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentLinkRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentLinkController *controllers.PaymentLinkController) {
	router.Use(middlewares.RequireAPIKey)
	router.Use(middlewares.PaymentLinkRateLimit())
	router.Use(middlewares.RequireJSON)
	router.Use(middlewares.BodyBuffer)

	router.Post("/", paymentLinkController.CreatePaymentLink)
	router.Post("/preview", paymentLinkController.PreviewPaymentLink)
}
