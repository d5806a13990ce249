package routers

import (
	"fmt"

	"lidio-service/internal/app/config"
	"lidio-service/internal/app/delivery/http/controllers"
	"lidio-service/internal/app/delivery/http/middlewares"
	"lidio-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	paymentLinkController *controllers.PaymentLinkController,
	paymentNotificationController *controllers.PaymentNotificationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourcePaymentLinks, func(r chi.Router) {
				attachPaymentLinkRoutes(r, middlewares, paymentLinkController)
			})

			r.Route("/"+constvars.ResourceWebhooks, func(r chi.Router) {
				attachWebhookRoutes(r, middlewares, paymentNotificationController)
			})
		})
	})
}
