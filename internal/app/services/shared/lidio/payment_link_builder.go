package lidio

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errNoCaller = errors.New("payment link builder has no transport")

// PaymentLinkBuilder accumulates a CreatePaymentLink request.
//
// Basket items and payment instruments can be given either directly (SetBasketItems,
// SetPaymentInstruments, SetPaymentInstrumentInfo) or incrementally (AddBasketItem,
// AddPaymentMethod). The first strategy used for a field locks it for the builder's lifetime.
// A builder is owned by a single goroutine.
type PaymentLinkBuilder struct {
	caller Caller
	log    *zap.Logger
	now    func() time.Time

	values      map[string]any
	basketItems []*BasketItem
	instruments *instrumentSet

	basketItemsDirect      bool
	basketItemsIncremental bool
	instrumentsDirect      bool
	instrumentsIncremental bool
}

// NewPaymentLinkBuilder returns a builder with the default currency. A nil caller builds
// requests that can be finalized but not submitted.
func NewPaymentLinkBuilder(caller Caller, log *zap.Logger) *PaymentLinkBuilder {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentLinkBuilder{
		caller:      caller,
		log:         log,
		now:         time.Now,
		values:      map[string]any{"currency": constvars.LidioDefaultCurrency},
		instruments: newInstrumentSet(),
	}
}

// Set routes a top level field through its validator. Unknown fields are rejected.
func (b *PaymentLinkBuilder) Set(field string, value any) error {
	descriptor, ok := findPaymentLinkField(field)
	if !ok {
		return exceptions.ErrUnknownField(field)
	}
	return descriptor.set(b, value)
}

// Get returns a copy of the stored value of a top level field.
func (b *PaymentLinkBuilder) Get(field string) (any, bool) {
	switch field {
	case "basketItems":
		if b.basketItemsIncremental {
			return slices.Clone(b.basketItems), true
		}
	case "paymentInstruments":
		if b.instrumentsIncremental {
			return b.instruments.instruments(), true
		}
	case "paymentInstrumentInfo":
		if b.instrumentsIncremental {
			return b.instruments.instrumentInfo(), true
		}
	}
	value, ok := b.values[field]
	if !ok {
		return nil, false
	}
	return cloneValue(value), true
}

func (b *PaymentLinkBuilder) SetOrderID(orderID string) {
	b.values["orderId"] = orderID
}

func (b *PaymentLinkBuilder) SetMerchantProcessID(merchantProcessID string) {
	b.values["merchantProcessId"] = merchantProcessID
}

func (b *PaymentLinkBuilder) SetMerchantCustomField(value string) {
	b.values["merchantCustomField"] = value
}

// SetMerchantCustomFieldAsUUID stores a random token to be matched against the notification later.
func (b *PaymentLinkBuilder) SetMerchantCustomFieldAsUUID() string {
	token := uuid.NewString()
	b.values["merchantCustomField"] = token
	return token
}

func (b *PaymentLinkBuilder) SetTotalAmount(amount float64) error {
	return b.setTotalAmount(amount)
}

func (b *PaymentLinkBuilder) setTotalAmount(value any) error {
	amount, err := newAmount("totalAmount", value)
	if err != nil {
		return err
	}
	b.values["totalAmount"] = amount
	return nil
}

func (b *PaymentLinkBuilder) SetCurrency(currency string) error {
	if err := checkEnum("currency", currency, constvars.LidioAllowedCurrencies); err != nil {
		return err
	}
	b.values["currency"] = currency
	return nil
}

func (b *PaymentLinkBuilder) SetCustomerInfo(customerInfo map[string]any) error {
	for _, key := range []string{"email", "customerId"} {
		if isEmptyValue(customerInfo[key]) {
			return exceptions.ErrRequiredFieldMissing("customerInfo." + key)
		}
	}
	b.values["customerInfo"] = cloneValue(customerInfo)
	return nil
}

func (b *PaymentLinkBuilder) SetPaymentInstruments(names []string) error {
	if b.instrumentsIncremental {
		return exceptions.ErrMixedConstruction("paymentInstruments")
	}
	if len(names) == 0 {
		return exceptions.ErrEmptyField("paymentInstruments")
	}
	for _, name := range names {
		if err := checkEnum("paymentInstruments", name, constvars.LidioAllowedPaymentInstruments); err != nil {
			return err
		}
	}
	b.values["paymentInstruments"] = slices.Clone(names)
	b.instrumentsDirect = true
	return nil
}

func (b *PaymentLinkBuilder) SetPaymentInstrumentInfo(info map[string]any) error {
	if b.instrumentsIncremental {
		return exceptions.ErrMixedConstruction("paymentInstrumentInfo")
	}
	if len(info) == 0 {
		return exceptions.ErrEmptyField("paymentInstrumentInfo")
	}
	b.values["paymentInstrumentInfo"] = cloneValue(info)
	b.instrumentsDirect = true
	return nil
}

// AddPaymentMethod adds an instrument and merges options over its defaults.
func (b *PaymentLinkBuilder) AddPaymentMethod(name string, options map[string]any) error {
	if b.instrumentsDirect {
		return exceptions.ErrMixedConstruction("paymentInstruments")
	}
	if err := b.instruments.add(name, options); err != nil {
		return err
	}
	b.instrumentsIncremental = true
	return nil
}

// SetCardOptions tunes the shared card bucket created by a card instrument.
func (b *PaymentLinkBuilder) SetCardOptions(options map[string]any) error {
	if !b.instrumentsIncremental {
		return exceptions.ErrCardInstrumentRequired()
	}
	return b.instruments.setCardOptions(options)
}

func (b *PaymentLinkBuilder) SetPaymentConsents(consents map[string]any) error {
	if len(consents) == 0 {
		return exceptions.ErrEmptyField("paymentConsents")
	}
	for _, key := range []string{"paymentExtraConsent1", "paymentExtraConsent2"} {
		if err := validateOptionEnum(consents, key, "paymentConsents."+key, constvars.LidioConsentValues); err != nil {
			return err
		}
	}
	b.values["paymentConsents"] = cloneValue(consents)
	return nil
}

func (b *PaymentLinkBuilder) SetLinkExpireHours(hours int) {
	b.values["linkExpireHours"] = hours
}

// ExpireWithDate stores the whole hours between now and target. Minutes are dropped and a
// past target yields a negative value.
func (b *PaymentLinkBuilder) ExpireWithDate(target time.Time) int {
	hours := int(target.Sub(b.now()) / time.Hour)
	b.values["linkExpireHours"] = hours
	return hours
}

func (b *PaymentLinkBuilder) SetSendVia(sendVia string) error {
	if err := checkEnum("sendVia", sendVia, constvars.LidioSendViaOptions); err != nil {
		return err
	}
	b.values["sendVia"] = sendVia
	return nil
}

// SetBasketItems stores ready made basket items as they are.
func (b *PaymentLinkBuilder) SetBasketItems(items []map[string]any) error {
	if b.basketItemsIncremental {
		return exceptions.ErrMixedConstruction("basketItems")
	}
	if len(items) == 0 {
		return exceptions.ErrEmptyField("basketItems")
	}
	b.values["basketItems"] = cloneValue(items)
	b.basketItemsDirect = true
	return nil
}

func (b *PaymentLinkBuilder) AddBasketItem(options map[string]any) error {
	if b.basketItemsDirect {
		return exceptions.ErrMixedConstruction("basketItems")
	}
	item, err := NewBasketItem(options)
	if err != nil {
		return err
	}
	b.basketItems = append(b.basketItems, item)
	b.basketItemsIncremental = true
	return nil
}

func (b *PaymentLinkBuilder) SetSubscriptionConfig(config map[string]any) error {
	if len(config) == 0 {
		return exceptions.ErrEmptyField("subscriptionConfig")
	}
	checks := []struct {
		key     string
		allowed []string
	}{
		{key: "paymentItemSubscriptionType", allowed: constvars.LidioSubscriptionItemTypes},
		{key: "trialDurationUnit", allowed: constvars.LidioSubscriptionTrialDurationUnits},
		{key: "periodDurationUnit", allowed: constvars.LidioSubscriptionPeriodDurationUnits},
	}
	for _, check := range checks {
		if err := validateOptionEnum(config, check.key, "subscriptionConfig."+check.key, check.allowed); err != nil {
			return err
		}
	}
	b.values["subscriptionConfig"] = cloneValue(config)
	return nil
}

func (b *PaymentLinkBuilder) SetPartialPayment(config map[string]any) error {
	if len(config) == 0 {
		return exceptions.ErrEmptyField("partialPayment")
	}
	if err := validateOptionEnum(config, "mode", "partialPayment.mode", constvars.LidioPartialPaymentModes); err != nil {
		return err
	}
	b.values["partialPayment"] = cloneValue(config)
	return nil
}

// SetCustomParameters serializes params as "Key:value" tokens joined by commas.
func (b *PaymentLinkBuilder) SetCustomParameters(params map[string]string) error {
	if len(params) == 0 {
		return exceptions.ErrEmptyField("customParameters")
	}
	for key := range params {
		if !slices.Contains(constvars.LidioCustomParameterKeys, key) {
			return exceptions.ErrUnknownCustomParameterKey(key)
		}
	}

	tokens := make([]string, 0, len(params))
	for _, key := range constvars.LidioCustomParameterKeys {
		if value, ok := params[key]; ok {
			tokens = append(tokens, key+":"+value)
		}
	}
	b.values["customParameters"] = strings.Join(tokens, ",")
	return nil
}

func (b *PaymentLinkBuilder) SetLanguage(language string) error {
	if err := checkEnum("language", language, constvars.LidioLanguageOptions); err != nil {
		return err
	}
	b.values["language"] = language
	return nil
}

func (b *PaymentLinkBuilder) SetNotificationURL(url string) {
	b.values["notificationUrl"] = url
}

// Finalize produces the wire body in allow-list order.
func (b *PaymentLinkBuilder) Finalize() (*WireRequest, error) {
	body := newWireRequest()
	for _, field := range paymentLinkFields {
		value, ok, err := b.wireValue(field.name)
		if err != nil {
			return nil, err
		}
		if !ok {
			if field.required {
				return nil, exceptions.ErrRequiredFieldMissing(field.name)
			}
			continue
		}
		body.set(field.name, value)
	}
	return body, nil
}

func (b *PaymentLinkBuilder) wireValue(field string) (any, bool, error) {
	switch field {
	case "basketItems":
		if b.basketItemsIncremental {
			items := make([]map[string]any, 0, len(b.basketItems))
			for _, item := range b.basketItems {
				serialized, err := item.ToMap()
				if err != nil {
					return nil, false, err
				}
				items = append(items, serialized)
			}
			return items, true, nil
		}
	case "paymentInstruments":
		if b.instrumentsIncremental {
			return b.instruments.instruments(), true, nil
		}
	case "paymentInstrumentInfo":
		if b.instrumentsIncremental {
			info := b.instruments.instrumentInfo()
			return info, len(info) > 0, nil
		}
	}

	value, ok := b.values[field]
	if !ok {
		return nil, false, nil
	}
	return cloneValue(value), true, nil
}

// Submit finalizes the request and sends it once. Retries are left to the caller.
func (b *PaymentLinkBuilder) Submit(ctx context.Context) (*PaymentLinkResponse, error) {
	body, err := b.Finalize()
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimPrefix(constvars.LidioEndpointCreatePaymentLink, "/")
	if b.caller == nil {
		return nil, exceptions.ErrGatewayTransport(errNoCaller, endpoint)
	}

	raw, err := b.caller.Call(ctx, constvars.LidioEndpointCreatePaymentLink, body, constvars.MethodPost)
	if err != nil {
		b.log.Error("PaymentLinkBuilder.Submit transport failed",
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrGatewayTransport(err, endpoint)
	}

	response := newPaymentLinkResponse(raw, b, body)
	if !response.Success() {
		b.log.Warn("PaymentLinkBuilder.Submit gateway rejected request",
			zap.String(constvars.LoggingResultCodeKey, response.Result),
			zap.String("result_message", response.ResultMessage),
		)
		return nil, resultError(response.Result, response.ResultMessage)
	}

	b.log.Info("PaymentLinkBuilder.Submit payment link created",
		zap.String(constvars.LoggingOrderIDKey, response.OrderID),
	)
	return response, nil
}
