package controllers

import (
	"net/http"

	"lidio-service/internal/app/contracts"
	"lidio-service/internal/app/delivery/http/middlewares"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PaymentNotificationController struct {
	Log                        *zap.Logger
	PaymentNotificationUsecase contracts.PaymentNotificationUsecase
}

func NewPaymentNotificationController(logger *zap.Logger, paymentNotificationUsecase contracts.PaymentNotificationUsecase) *PaymentNotificationController {
	return &PaymentNotificationController{
		Log:                        logger,
		PaymentNotificationUsecase: paymentNotificationUsecase,
	}
}

// HandlePaymentNotification expects BodyBuffer to have run so the signed bytes are untouched.
func (ctrl *PaymentNotificationController) HandlePaymentNotification(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	utils.LogSecurityEvent(ctrl.Log, "payment_notification_received", requestID, "info",
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
	)

	ack, err := ctrl.PaymentNotificationUsecase.AcceptPaymentNotification(r.Context(), middlewares.RawBody(r), r.Header)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.PaymentNotificationAcceptedMessage
	if ack.Duplicate {
		message = constvars.PaymentNotificationDuplicateMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, ack)
}
