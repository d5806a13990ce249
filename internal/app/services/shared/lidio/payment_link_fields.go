package lidio

import (
	"lidio-service/internal/pkg/exceptions"
)

type fieldDescriptor struct {
	name     string
	required bool
	set      func(b *PaymentLinkBuilder, value any) error
}

// paymentLinkFields is the CreatePaymentLink allow-list. Finalize emits keys in this order.
var paymentLinkFields = []fieldDescriptor{
	{name: "orderId", set: setStringField("orderId")},
	{name: "merchantProcessId", set: setStringField("merchantProcessId")},
	{name: "merchantCustomField", set: setStringField("merchantCustomField")},
	{name: "totalAmount", set: func(b *PaymentLinkBuilder, value any) error { return b.setTotalAmount(value) }},
	{name: "currency", set: func(b *PaymentLinkBuilder, value any) error {
		currency, err := asString("currency", value)
		if err != nil {
			return err
		}
		return b.SetCurrency(currency)
	}},
	{name: "customerInfo", required: true, set: func(b *PaymentLinkBuilder, value any) error {
		info, err := asMap("customerInfo", value)
		if err != nil {
			return err
		}
		return b.SetCustomerInfo(info)
	}},
	{name: "paymentInstruments", required: true, set: func(b *PaymentLinkBuilder, value any) error {
		names, err := asStringSlice("paymentInstruments", value)
		if err != nil {
			return err
		}
		return b.SetPaymentInstruments(names)
	}},
	{name: "paymentInstrumentInfo", required: true, set: func(b *PaymentLinkBuilder, value any) error {
		info, err := asMap("paymentInstrumentInfo", value)
		if err != nil {
			return err
		}
		return b.SetPaymentInstrumentInfo(info)
	}},
	{name: "paymentConsents", set: func(b *PaymentLinkBuilder, value any) error {
		consents, err := asMap("paymentConsents", value)
		if err != nil {
			return err
		}
		return b.SetPaymentConsents(consents)
	}},
	{name: "linkExpireHours", set: func(b *PaymentLinkBuilder, value any) error {
		d, ok := toDecimal(value)
		if !ok {
			return exceptions.ErrInvalidFieldType("linkExpireHours", "number", value)
		}
		if d.IsInteger() {
			b.SetLinkExpireHours(int(d.IntPart()))
			return nil
		}
		b.values["linkExpireHours"] = d.InexactFloat64()
		return nil
	}},
	{name: "sendVia", set: func(b *PaymentLinkBuilder, value any) error {
		sendVia, err := asString("sendVia", value)
		if err != nil {
			return err
		}
		return b.SetSendVia(sendVia)
	}},
	{name: "doNotDistributeSubsellerPayout", set: setBoolField("doNotDistributeSubsellerPayout")},
	{name: "basketItems", required: true, set: func(b *PaymentLinkBuilder, value any) error {
		items, err := asMapSlice("basketItems", value)
		if err != nil {
			return err
		}
		return b.SetBasketItems(items)
	}},
	{name: "invoiceAddress", set: setMapField("invoiceAddress")},
	{name: "deliveryAddress", set: setMapField("deliveryAddress")},
	{name: "subscriptionConfig", set: func(b *PaymentLinkBuilder, value any) error {
		config, err := asMap("subscriptionConfig", value)
		if err != nil {
			return err
		}
		return b.SetSubscriptionConfig(config)
	}},
	{name: "partialPayment", set: func(b *PaymentLinkBuilder, value any) error {
		config, err := asMap("partialPayment", value)
		if err != nil {
			return err
		}
		return b.SetPartialPayment(config)
	}},
	{name: "customParameters", set: func(b *PaymentLinkBuilder, value any) error {
		if csv, ok := value.(string); ok {
			b.values["customParameters"] = csv
			return nil
		}
		params, err := asMap("customParameters", value)
		if err != nil {
			return err
		}
		converted := make(map[string]string, len(params))
		for key, param := range params {
			s, err := asCustomParameterValue(key, param)
			if err != nil {
				return err
			}
			converted[key] = s
		}
		return b.SetCustomParameters(converted)
	}},
	{name: "language", set: func(b *PaymentLinkBuilder, value any) error {
		language, err := asString("language", value)
		if err != nil {
			return err
		}
		return b.SetLanguage(language)
	}},
	{name: "notificationUrl", set: setStringField("notificationUrl")},
	{name: "alternateNotificationUrl", set: setStringField("alternateNotificationUrl")},
	{name: "groupCode", set: setStringField("groupCode")},
	{name: "useExternalFraudControl", set: setBoolField("useExternalFraudControl")},
	{name: "merchantSalesRepresentative", set: setStringField("merchantSalesRepresentative")},
	{name: "merchantReferralCode", set: setStringField("merchantReferralCode")},
	{name: "clientType", set: setStringField("clientType")},
	{name: "clientIp", set: setStringField("clientIp")},
	{name: "clientUserAgent", set: setStringField("clientUserAgent")},
	{name: "clientInfo", set: setStringField("clientInfo")},
}

func findPaymentLinkField(name string) (fieldDescriptor, bool) {
	for _, field := range paymentLinkFields {
		if field.name == name {
			return field, true
		}
	}
	return fieldDescriptor{}, false
}

// PaymentLinkFieldNames lists the allow-listed top level fields in wire order.
func PaymentLinkFieldNames() []string {
	names := make([]string, 0, len(paymentLinkFields))
	for _, field := range paymentLinkFields {
		names = append(names, field.name)
	}
	return names
}

func setStringField(name string) func(*PaymentLinkBuilder, any) error {
	return func(b *PaymentLinkBuilder, value any) error {
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		b.values[name] = s
		return nil
	}
}

func setBoolField(name string) func(*PaymentLinkBuilder, any) error {
	return func(b *PaymentLinkBuilder, value any) error {
		v, err := asBool(name, value)
		if err != nil {
			return err
		}
		b.values[name] = v
		return nil
	}
}

func setMapField(name string) func(*PaymentLinkBuilder, any) error {
	return func(b *PaymentLinkBuilder, value any) error {
		m, err := asMap(name, value)
		if err != nil {
			return err
		}
		b.values[name] = cloneValue(m)
		return nil
	}
}

func asCustomParameterValue(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	}
	if d, ok := toDecimal(value); ok {
		return d.String(), nil
	}
	return "", exceptions.ErrInvalidFieldType("customParameters."+key, "string", value)
}
