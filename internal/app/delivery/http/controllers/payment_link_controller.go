package controllers

import (
	"net/http"

	"lidio-service/internal/app/contracts"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/dto/requests"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentLinkController struct {
	Log                *zap.Logger
	PaymentLinkUsecase contracts.PaymentLinkUsecase
}

func NewPaymentLinkController(logger *zap.Logger, paymentLinkUsecase contracts.PaymentLinkUsecase) *PaymentLinkController {
	return &PaymentLinkController{
		Log:                logger,
		PaymentLinkUsecase: paymentLinkUsecase,
	}
}

func (ctrl *PaymentLinkController) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request, err := ctrl.decodeCreatePaymentLink(r, requestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PaymentLinkUsecase.CreatePaymentLink(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("PaymentLinkController.CreatePaymentLink error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentLinkSuccessMessage, response)
}

func (ctrl *PaymentLinkController) PreviewPaymentLink(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request, err := ctrl.decodeCreatePaymentLink(r, requestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PaymentLinkUsecase.PreviewPaymentLink(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreviewPaymentLinkSuccessMessage, response)
}

func (ctrl *PaymentLinkController) decodeCreatePaymentLink(r *http.Request, requestID string) (*requests.CreatePaymentLink, error) {
	request := new(requests.CreatePaymentLink)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("PaymentLinkController failed to parse request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	utils.SanitizeCreatePaymentLinkRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("PaymentLinkController request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "validation"),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}
