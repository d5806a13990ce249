package constvars

const (
	LidioEndpointCreatePaymentLink = "/CreatePaymentLink"

	LidioHeaderMerchantCode   = "MerchantCode"
	LidioHeaderParametersHash = "parametershash"

	LidioResultSuccess   = "Success"
	LidioDefaultCurrency = "TRY"

	// LidioAmountTolerance absorbs the string/float round trip of amounts echoed back in notifications.
	LidioAmountTolerance = 0.00001
)

// Gateway result codes that have a dedicated error.
const (
	LidioResultInvalidOrderID       = "InvalidOrderId"
	LidioResultInvalidCredential    = "InvalidCredential"
	LidioResultCurrencyNotFound     = "CurrencyNotFound"
	LidioResultBankAccountNotActive = "BankAccountNotActive"
	LidioResultEmailMismatch        = "EmailMismatch"
)

// Payment instrument names accepted by CreatePaymentLink.
const (
	InstrumentStoredCard         = "StoredCard"
	InstrumentNewCard            = "NewCard"
	InstrumentBKMExpress         = "BKMExpress"
	InstrumentGarantiPay         = "GarantiPay"
	InstrumentMaximumMobil       = "MaximumMobil"
	InstrumentEmoney             = "Emoney"
	InstrumentWireTransfer       = "WireTransfer"
	InstrumentDirectWireTransfer = "DirectWireTransfer"
	InstrumentInstantLoan        = "InstantLoan"
	InstrumentMarketplaceBalance = "MarketplaceBalance"
	InstrumentIdeal              = "Ideal"
	InstrumentSofort             = "Sofort"
	InstrumentSepa               = "Sepa"
)

var LidioAllowedCurrencies = []string{
	"DKK", "JPY", "NOK", "RUB", "SEK", "CHF", "AED", "GBP", "USD", "TRY", "EUR",
}

var LidioAllowedPaymentInstruments = []string{
	InstrumentStoredCard,
	InstrumentNewCard,
	InstrumentBKMExpress,
	InstrumentGarantiPay,
	InstrumentMaximumMobil,
	InstrumentEmoney,
	InstrumentWireTransfer,
	InstrumentDirectWireTransfer,
	InstrumentInstantLoan,
	InstrumentMarketplaceBalance,
	InstrumentIdeal,
	InstrumentSofort,
	InstrumentSepa,
}

var LidioCardPaymentInstruments = []string{
	InstrumentStoredCard,
	InstrumentNewCard,
	InstrumentBKMExpress,
	InstrumentGarantiPay,
	InstrumentMaximumMobil,
}

var LidioThreeDSecureModes = []string{"None", "Mandatory", "Optional", "Optional3DSelected"}

var LidioCardSaveOffers = []string{"PostPayment", "PrepaymentMandatory", "PrepaymentOptional"}

// LidioConsentValues is shared by card save consents and payment consents.
var LidioConsentValues = []string{"None", "Mandatory", "Optional"}

var LidioVerificationMethods = []string{"OTP", "CVV", "OTPandCVV", "GoogleAuthenticator"}

var LidioPaymentInstrumentLanguages = []string{"EN", "TR"}

var LidioSendViaOptions = []string{"None", "Email", "SMS"}

var LidioCriticalBasketItemCategories = []string{
	"Gold",
	"MobilePhone",
	"Tablet",
	"Computer",
	"CarLoan",
	"Other",
	"DiyStore",
	"DigitalItem",
	"SuperMarket",
	"WhiteWare",
	"WearableTech",
	"SmallWhiteWare",
	"TV",
	"GameConsole",
	"AirConditionerHeater",
	"Electronic",
	"Accessory",
	"MotherBabyChild",
	"Shoes",
	"Clothes",
	"Cosmetics",
	"Furniture",
	"HomeLife",
	"Car",
}

var LidioBasketItemTypes = []string{"Virtual", "Physical"}

var LidioSubscriptionItemTypes = []string{"None", "TermBasedService", "InstallmentSales", "Continuous"}

var LidioSubscriptionTrialDurationUnits = []string{"None", "Day", "Week", "Month", "Year"}

var LidioSubscriptionPeriodDurationUnits = []string{"None", "Week", "Month", "Year"}

var LidioPartialPaymentModes = []string{"None", "Default", "Optional"}

var LidioLanguageOptions = []string{
	"Tr", "Tur", "En", "en", "Eng", "eng", "Fra", "fra", "Deu", "deu", "Ita", "ita",
}

// LidioCustomParameterKeys also fixes the order of the serialized customParameters tokens.
var LidioCustomParameterKeys = []string{
	"Lang",
	"MOTO",
	"MaskedCardNum",
	"SelectedInstallmentCount",
	"BankReferenceNo",
	"FirstSixLastFourTCKNMode",
}

// LidioCardOptionKeys are the top level keys of paymentInstrumentInfo.card a caller may override.
var LidioCardOptionKeys = []string{
	"processType",
	"useInstallment",
	"useLoyaltyPoints",
	"noAmex",
	"noDebitCard",
	"noForeignCard",
	"noCreditCard",
	"posConfiguration",
	"maxInstallmentConfig",
}

// Notification actions and payment results reported by the gateway.
const (
	LidioActionPayment          = "Payment"
	LidioActionPostauth         = "Postauth"
	LidioActionCancel           = "Cancel"
	LidioActionRefund           = "Refund"
	LidioActionPartialPayment   = "PartialPayment"
	LidioActionHostedPrePayment = "HostedPrePayment"

	LidioPaymentResultSuccess            = "Success"
	LidioPaymentResultRefused            = "Refused"
	LidioPaymentResultCancelled          = "Cancelled"
	LidioPaymentResultUserAuthError      = "UserAuthError"
	LidioPaymentResultUnexpectedState    = "UnexpectedState"
	LidioPaymentResultNewProcess         = "NewProcess"
	LidioPaymentResultWaitingForApproval = "WaitingForApproval"
)
