package payments

import (
	"context"
	"slices"
	"time"

	"lidio-service/internal/app/config"
	"lidio-service/internal/app/contracts"
	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/dto/requests"
	"lidio-service/internal/pkg/dto/responses"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentLinkUsecase struct {
	Lidio           *lidio.Client
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewPaymentLinkUsecase(
	lidioClient *lidio.Client,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentLinkUsecase {
	return &paymentLinkUsecase{
		Lidio:           lidioClient,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *paymentLinkUsecase) CreatePaymentLink(ctx context.Context, request *requests.CreatePaymentLink) (*responses.PaymentLink, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentLinkUsecase.CreatePaymentLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	builder := uc.Lidio.PaymentLink()
	if err := ApplyCreatePaymentLink(builder, request); err != nil {
		uc.Log.Error("paymentLinkUsecase.CreatePaymentLink error assembling request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	timeout := time.Duration(uc.InternalConfig.Lidio.RequestTimeoutInSeconds) * time.Second
	submitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	link, err := builder.Submit(submitCtx)
	if err != nil {
		uc.Log.Error("paymentLinkUsecase.CreatePaymentLink error submitting request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	orderID := link.OrderID
	if orderID == "" {
		orderID = request.OrderID
	}
	record := newPaymentLinkRecord(orderID, link.Request())
	ttl := time.Duration(uc.InternalConfig.Lidio.PaymentLinkTTLInHours) * time.Hour
	if err := savePaymentLinkRecord(ctx, uc.RedisRepository, record, ttl); err != nil {
		// The link already exists at the gateway, so the caller still gets it.
		uc.Log.Warn("paymentLinkUsecase.CreatePaymentLink error saving payment link record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, "payment_link_created", requestID,
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	return &responses.PaymentLink{
		OrderID:             orderID,
		SystemTransID:       link.SystemTransID,
		LinkURL:             link.LinkURL,
		Email:               link.Email,
		Phone:               link.Phone,
		MerchantCustomField: record.MerchantCustomField,
	}, nil
}

func (uc *paymentLinkUsecase) PreviewPaymentLink(ctx context.Context, request *requests.CreatePaymentLink) (*responses.PaymentLinkPreview, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentLinkUsecase.PreviewPaymentLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	builder := uc.Lidio.PaymentLink()
	if err := ApplyCreatePaymentLink(builder, request); err != nil {
		return nil, err
	}

	body, err := builder.Finalize()
	if err != nil {
		uc.Log.Info("paymentLinkUsecase.PreviewPaymentLink request incomplete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.PaymentLinkPreview{
		Fields: body.Keys(),
		Body:   body,
	}, nil
}

// ApplyCreatePaymentLink copies the free form fields first, in allow-list order,
// then the typed ones, so typed values win where both are given.
func ApplyCreatePaymentLink(builder *lidio.PaymentLinkBuilder, request *requests.CreatePaymentLink) error {
	names := lidio.PaymentLinkFieldNames()
	unknown := make([]string, 0)
	for field := range request.Fields {
		if !slices.Contains(names, field) {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return exceptions.ErrUnknownField(unknown[0])
	}

	for _, field := range names {
		value, ok := request.Fields[field]
		if !ok {
			continue
		}
		if err := builder.Set(field, value); err != nil {
			return err
		}
	}

	if request.OrderID != "" {
		builder.SetOrderID(request.OrderID)
	}
	if request.MerchantProcessID != "" {
		builder.SetMerchantProcessID(request.MerchantProcessID)
	}
	if request.GenerateMerchantCustomField {
		builder.SetMerchantCustomFieldAsUUID()
	}
	if request.TotalAmount > 0 {
		if err := builder.SetTotalAmount(request.TotalAmount); err != nil {
			return err
		}
	}
	if request.Currency != "" {
		if err := builder.SetCurrency(request.Currency); err != nil {
			return err
		}
	}
	if len(request.CustomerInfo) > 0 {
		if err := builder.SetCustomerInfo(request.CustomerInfo); err != nil {
			return err
		}
	}
	for _, method := range request.PaymentMethods {
		if err := builder.AddPaymentMethod(method.Name, method.Options); err != nil {
			return err
		}
	}
	if len(request.CardOptions) > 0 {
		if err := builder.SetCardOptions(request.CardOptions); err != nil {
			return err
		}
	}
	for _, item := range request.BasketItems {
		if err := builder.AddBasketItem(item); err != nil {
			return err
		}
	}
	if request.SendVia != "" {
		if err := builder.SetSendVia(request.SendVia); err != nil {
			return err
		}
	}
	if request.Language != "" {
		if err := builder.SetLanguage(request.Language); err != nil {
			return err
		}
	}
	if request.NotificationURL != "" {
		builder.SetNotificationURL(request.NotificationURL)
	}
	if request.LinkExpireHours > 0 {
		builder.SetLinkExpireHours(request.LinkExpireHours)
	} else if request.ExpireAt != nil {
		builder.ExpireWithDate(*request.ExpireAt)
	}
	if len(request.CustomParameters) > 0 {
		if err := builder.SetCustomParameters(request.CustomParameters); err != nil {
			return err
		}
	}
	return nil
}
