package lidio

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// trimmedChars matches the characters the gateway may leave around the signed body.
const trimmedChars = " \t\n\r\x00\x0B"

var amountTolerance = decimal.NewFromFloat(constvars.LidioAmountTolerance)

type notificationPayload struct {
	Action        string         `json:"action" validate:"required"`
	CompanyInfo   map[string]any `json:"companyInfo" validate:"required,min=1"`
	PaymentResult string         `json:"paymentResult" validate:"required"`
	ProcessInfo   map[string]any `json:"processInfo" validate:"required,min=1"`
	CustomerInfo  map[string]any `json:"customerInfo" validate:"required,min=1"`
	BasketItems   []any          `json:"basketItems" validate:"required,min=1"`
	PaymentList   []any          `json:"paymentList" validate:"required,min=1"`
}

var notificationKeys = map[string]string{
	"Action":        "action",
	"CompanyInfo":   "companyInfo",
	"PaymentResult": "paymentResult",
	"ProcessInfo":   "processInfo",
	"CustomerInfo":  "customerInfo",
	"BasketItems":   "basketItems",
	"PaymentList":   "paymentList",
}

// VerificationStatus flags only move from false to true.
type VerificationStatus struct {
	SignaturesVerified          bool `json:"signaturesVerified"`
	RequestedAmountVerified     bool `json:"requestedAmountVerified"`
	ProcessedAmountVerified     bool `json:"processedAmountVerified"`
	MerchantCustomFieldVerified bool `json:"merchantCustomFieldVerified"`
}

// PaymentNotification is one inbound notification. It is single use and not safe for concurrent use.
type PaymentNotification struct {
	payload   notificationPayload
	rawBody   []byte
	signature string
	creds     Credentials
	status    VerificationStatus
}

// ParsePaymentNotification requires all seven top level keys to be present and non-empty.
func ParsePaymentNotification(rawBody []byte, header http.Header, creds Credentials) (*PaymentNotification, error) {
	var payload notificationPayload
	decoder := json.NewDecoder(bytes.NewReader(rawBody))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, exceptions.ErrNotificationMalformed(err)
	}

	if err := utils.ValidateStruct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, exceptions.ErrNotificationMalformed(err)
		}
		missing := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			missing = append(missing, notificationKeys[fieldErr.StructField()])
		}
		return nil, exceptions.ErrNotificationMissingFields(missing)
	}

	notification := &PaymentNotification{
		payload: payload,
		rawBody: rawBody,
		creds:   creds,
	}
	if header != nil {
		notification.signature = header.Get(constvars.LidioHeaderParametersHash)
	}
	return notification, nil
}

// Signature computes base64(sha256(trimmed body + password)).
func Signature(rawBody []byte, apiPassword string) string {
	trimmed := strings.Trim(string(rawBody), trimmedChars)
	sum := sha256.Sum256([]byte(trimmed + apiPassword))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifySignatures checks the parametershash header and the embedded merchant key.
func (n *PaymentNotification) VerifySignatures() bool {
	trimmed := strings.Trim(string(n.rawBody), trimmedChars)
	if trimmed == "" || n.creds.APIPassword == "" || n.signature == "" {
		return false
	}

	expected := Signature(n.rawBody, n.creds.APIPassword)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.signature)) != 1 {
		return false
	}

	merchantKey, _ := n.payload.CompanyInfo["merchantKey"].(string)
	if merchantKey == "" || n.creds.MerchantKey == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(merchantKey), []byte(n.creds.MerchantKey)) != 1 {
		return false
	}

	n.status.SignaturesVerified = true
	return true
}

func (n *PaymentNotification) VerifyRequestedAmount(amount float64) bool {
	if !n.amountMatches("totalAmountRequested", amount) {
		return false
	}
	n.status.RequestedAmountVerified = true
	return true
}

func (n *PaymentNotification) VerifyProcessedAmount(amount float64) bool {
	if !n.amountMatches("totalAmountProcessed", amount) {
		return false
	}
	n.status.ProcessedAmountVerified = true
	return true
}

func (n *PaymentNotification) amountMatches(key string, amount float64) bool {
	raw := n.payload.ProcessInfo[key]
	if isEmptyValue(raw) {
		return false
	}
	reported, ok := toDecimal(raw)
	if !ok {
		return false
	}
	return reported.Sub(decimal.NewFromFloat(amount)).Abs().LessThanOrEqual(amountTolerance)
}

func (n *PaymentNotification) VerifyMerchantCustomField(token string) bool {
	field := n.MerchantCustomField()
	if field == "" || field != token {
		return false
	}
	n.status.MerchantCustomFieldVerified = true
	return true
}

func (n *PaymentNotification) Status() VerificationStatus {
	return n.status
}

func (n *PaymentNotification) Action() string {
	return n.payload.Action
}

func (n *PaymentNotification) PaymentResult() string {
	return n.payload.PaymentResult
}

// Successful reports a final successful payment. NewProcess and WaitingForApproval are not final.
func (n *PaymentNotification) Successful() bool {
	return n.payload.PaymentResult == constvars.LidioPaymentResultSuccess
}

func (n *PaymentNotification) Failed() (string, bool) {
	if n.Successful() {
		return "", false
	}
	return n.payload.PaymentResult, true
}

func (n *PaymentNotification) OrderID() string {
	return n.processInfoString("orderId")
}

func (n *PaymentNotification) MerchantProcessID() string {
	return n.processInfoString("merchantProcessId")
}

func (n *PaymentNotification) MerchantCustomField() string {
	return n.processInfoString("merchantCustomField")
}

func (n *PaymentNotification) ProcessInfo() map[string]any {
	return cloneValue(n.payload.ProcessInfo).(map[string]any)
}

func (n *PaymentNotification) CustomerInfo() map[string]any {
	return cloneValue(n.payload.CustomerInfo).(map[string]any)
}

func (n *PaymentNotification) BasketItems() []any {
	return cloneValue(n.payload.BasketItems).([]any)
}

func (n *PaymentNotification) PaymentList() []any {
	return cloneValue(n.payload.PaymentList).([]any)
}

// SignatureHeader is the parametershash value the notification arrived with.
func (n *PaymentNotification) SignatureHeader() string {
	return n.signature
}

func (n *PaymentNotification) processInfoString(key string) string {
	return stringValue(n.payload.ProcessInfo[key])
}

// ToMap serializes the notification with its verification status. companyInfo is never included
// and "failed" holds the payment result of an unsuccessful payment, false otherwise.
func (n *PaymentNotification) ToMap(skipKeys ...string) map[string]any {
	var failed any = false
	if result, ok := n.Failed(); ok {
		failed = result
	}
	result := map[string]any{
		"action":                      n.payload.Action,
		"paymentResult":               n.payload.PaymentResult,
		"processInfo":                 n.ProcessInfo(),
		"customerInfo":                n.CustomerInfo(),
		"basketItems":                 n.BasketItems(),
		"paymentList":                 n.PaymentList(),
		"success":                     n.Successful(),
		"failed":                      failed,
		"orderId":                     n.OrderID(),
		"merchantProcessId":           n.MerchantProcessID(),
		"merchantCustomField":         n.MerchantCustomField(),
		"signaturesVerified":          n.status.SignaturesVerified,
		"requestedAmountVerified":     n.status.RequestedAmountVerified,
		"processedAmountVerified":     n.status.ProcessedAmountVerified,
		"merchantCustomFieldVerified": n.status.MerchantCustomFieldVerified,
	}
	for _, key := range skipKeys {
		delete(result, key)
	}
	return result
}

func (n *PaymentNotification) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}
