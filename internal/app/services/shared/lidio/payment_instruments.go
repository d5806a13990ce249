package lidio

import (
	"slices"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
)

const cardBucketKey = "card"

// instrumentOptions describes where an instrument keeps its options inside paymentInstrumentInfo.
type instrumentOptions struct {
	card     bool
	key      string
	defaults func() map[string]any
	validate func(overrides map[string]any) error
}

var instrumentCatalog = map[string]instrumentOptions{
	constvars.InstrumentNewCard: {
		card:     true,
		key:      "newCard",
		defaults: newCardDefaults,
		validate: validateNewCardOptions,
	},
	constvars.InstrumentStoredCard: {
		card:     true,
		key:      "storedCard",
		defaults: storedCardDefaults,
		validate: validateStoredCardOptions,
	},
	constvars.InstrumentBKMExpress:         {card: true, key: "bkmExpress", defaults: emptyDefaults},
	constvars.InstrumentGarantiPay:         {card: true, key: "garantiPay", defaults: emptyDefaults},
	constvars.InstrumentMaximumMobil:       {card: true, key: "maximumMobil", defaults: emptyDefaults},
	constvars.InstrumentEmoney:             {key: "emoney", defaults: emptyDefaults},
	constvars.InstrumentWireTransfer:       {key: "wireTransfer", defaults: emptyDefaults},
	constvars.InstrumentDirectWireTransfer: {key: "directWireTransfer", defaults: emptyDefaults},
	constvars.InstrumentInstantLoan:        {key: "instantLoan", defaults: instantLoanDefaults},
	constvars.InstrumentIdeal: {
		key:      "ideal",
		defaults: bankRedirectDefaults,
		validate: validateLanguageOption("ideal"),
	},
	constvars.InstrumentSofort: {
		key:      "sofort",
		defaults: bankRedirectDefaults,
		validate: validateLanguageOption("sofort"),
	},
	constvars.InstrumentSepa: {key: "sepa", defaults: sepaDefaults},
}

func emptyDefaults() map[string]any {
	return map[string]any{}
}

func cardDefaults() map[string]any {
	return map[string]any{
		"processType":          "sales",
		"useInstallment":       false,
		"useLoyaltyPoints":     false,
		"noAmex":               false,
		"noDebitCard":          false,
		"noForeignCard":        false,
		"noCreditCard":         false,
		"posConfiguration":     map[string]any{},
		"maxInstallmentConfig": map[string]any{},
	}
}

func newCardDefaults() map[string]any {
	return map[string]any{
		"threeDSecureMode":   "Optional3DSelected",
		"useIVRForCardEntry": false,
		"noCvv":              false,
		"cardSaveOffer":      "PostPayment",
		"cardConsents": map[string]any{
			"cardSaveExtraConsent1": "None",
		},
	}
}

func storedCardDefaults() map[string]any {
	return map[string]any{
		"threeDSecureMode":    "Optional3DSelected",
		"verificationMethods": []any{"OTP", "CVV", "OTPandCVV", "GoogleAuthenticator"},
		"customerIsLoggedIn":  true,
	}
}

func instantLoanDefaults() map[string]any {
	return map[string]any{
		"campaignCodeList": []any{
			map[string]any{"bankCode": "", "campaignCode": ""},
		},
	}
}

func bankRedirectDefaults() map[string]any {
	return map[string]any{
		"posId":              0,
		"bankAccountCountry": "",
		"address":            "",
		"postalCode":         "",
		"city":               "",
		"countryOfResidence": "",
		"language":           "TR",
	}
}

func sepaDefaults() map[string]any {
	return map[string]any{
		"accountId":          0,
		"iban":               "",
		"bic":                "",
		"accountHolder":      "",
		"address":            "",
		"postalCode":         "",
		"city":               "",
		"countryOfResidence": "",
	}
}

func validateNewCardOptions(overrides map[string]any) error {
	if err := validateOptionEnum(overrides, "threeDSecureMode", "newCard.threeDSecureMode", constvars.LidioThreeDSecureModes); err != nil {
		return err
	}
	if err := validateOptionEnum(overrides, "cardSaveOffer", "newCard.cardSaveOffer", constvars.LidioCardSaveOffers); err != nil {
		return err
	}

	raw, ok := overrides["cardConsents"]
	if !ok {
		return nil
	}
	consents, err := asMap("newCard.cardConsents", raw)
	if err != nil {
		return err
	}
	return validateOptionEnum(consents, "cardSaveExtraConsent1", "newCard.cardConsents.cardSaveExtraConsent1", constvars.LidioConsentValues)
}

func validateStoredCardOptions(overrides map[string]any) error {
	if err := validateOptionEnum(overrides, "threeDSecureMode", "storedCard.threeDSecureMode", constvars.LidioThreeDSecureModes); err != nil {
		return err
	}

	raw, ok := overrides["verificationMethods"]
	if !ok {
		return nil
	}
	methods, err := asStringSlice("storedCard.verificationMethods", raw)
	if err != nil {
		return err
	}
	for _, method := range methods {
		if err := checkEnum("storedCard.verificationMethods", method, constvars.LidioVerificationMethods); err != nil {
			return err
		}
	}
	return nil
}

func validateLanguageOption(key string) func(map[string]any) error {
	return func(overrides map[string]any) error {
		return validateOptionEnum(overrides, "language", key+".language", constvars.LidioPaymentInstrumentLanguages)
	}
}

func validateOptionEnum(options map[string]any, key, path string, allowed []string) error {
	raw, ok := options[key]
	if !ok {
		return nil
	}
	value, err := asString(path, raw)
	if err != nil {
		return err
	}
	return checkEnum(path, value, allowed)
}

// instrumentSet is the incrementally built pair of paymentInstruments and paymentInstrumentInfo.
type instrumentSet struct {
	names []string
	info  map[string]any
}

func newInstrumentSet() *instrumentSet {
	return &instrumentSet{info: make(map[string]any)}
}

func (s *instrumentSet) empty() bool {
	return len(s.names) == 0
}

func (s *instrumentSet) cardBucket() (map[string]any, bool) {
	card, ok := s.info[cardBucketKey].(map[string]any)
	return card, ok
}

// add validates everything before mutating, a rejected instrument leaves the set untouched.
func (s *instrumentSet) add(name string, overrides map[string]any) error {
	if err := checkEnum("paymentInstruments", name, constvars.LidioAllowedPaymentInstruments); err != nil {
		return err
	}
	if slices.Contains(s.names, name) {
		return exceptions.ErrInstrumentAlreadyAdded(name)
	}

	options, configurable := instrumentCatalog[name]
	if configurable {
		if s.hasOptions(options) {
			return exceptions.ErrInstrumentOptionsAlreadySet(name)
		}
		if options.validate != nil {
			if err := options.validate(overrides); err != nil {
				return err
			}
		}
	}

	s.names = append(s.names, name)
	if slices.Contains(constvars.LidioCardPaymentInstruments, name) {
		if _, ok := s.cardBucket(); !ok {
			s.info[cardBucketKey] = cardDefaults()
		}
	}
	if !configurable {
		return nil
	}

	merged := mergeOptions(options.defaults(), overrides)
	if options.card {
		card, _ := s.cardBucket()
		card[options.key] = merged
		return nil
	}
	s.info[options.key] = merged
	return nil
}

func (s *instrumentSet) hasOptions(options instrumentOptions) bool {
	if options.card {
		card, ok := s.cardBucket()
		if !ok {
			return false
		}
		_, exists := card[options.key]
		return exists
	}
	_, exists := s.info[options.key]
	return exists
}

// setCardOptions merges allow-listed top level card keys into the card bucket.
func (s *instrumentSet) setCardOptions(overrides map[string]any) error {
	card, ok := s.cardBucket()
	if !ok {
		return exceptions.ErrCardInstrumentRequired()
	}
	for key := range overrides {
		if !slices.Contains(constvars.LidioCardOptionKeys, key) {
			return exceptions.ErrCardOptionNotAllowed(key)
		}
	}
	mergeOptions(card, overrides)
	return nil
}

func (s *instrumentSet) instruments() []string {
	return slices.Clone(s.names)
}

func (s *instrumentSet) instrumentInfo() map[string]any {
	return cloneValue(s.info).(map[string]any)
}
