package lidio

import (
	"fmt"

	"lidio-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type PaymentLinkResponse struct {
	Result        string `json:"result"`
	ResultMessage string `json:"resultMessage,omitempty"`
	OrderID       string `json:"orderId"`
	SystemTransID string `json:"systemTransId,omitempty"`
	LinkURL       string `json:"linkURL"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	builder *PaymentLinkBuilder
	request *WireRequest
}

func newPaymentLinkResponse(raw map[string]any, builder *PaymentLinkBuilder, request *WireRequest) *PaymentLinkResponse {
	return &PaymentLinkResponse{
		Result:        stringValue(raw["result"]),
		ResultMessage: stringValue(raw["resultMessage"]),
		OrderID:       stringValue(raw["orderId"]),
		SystemTransID: stringValue(raw["systemTransId"]),
		LinkURL:       stringValue(raw["linkURL"]),
		Email:         stringValue(raw["email"]),
		Phone:         stringValue(raw["phone"]),
		builder:       builder,
		request:       request,
	}
}

func (r *PaymentLinkResponse) Success() bool {
	return r.Result == constvars.LidioResultSuccess
}

// Failed returns the result code when the call did not succeed.
func (r *PaymentLinkResponse) Failed() (string, bool) {
	if r.Success() {
		return "", false
	}
	return r.Result, true
}

func (r *PaymentLinkResponse) RequestBuilder() *PaymentLinkBuilder {
	return r.builder
}

// Request is the body that was sent.
func (r *PaymentLinkResponse) Request() *WireRequest {
	return r.request
}

func (r *PaymentLinkResponse) ToMap(withRequestParameters bool) map[string]any {
	result := map[string]any{
		"result":        r.Result,
		"resultMessage": r.ResultMessage,
		"orderId":       r.OrderID,
		"systemTransId": r.SystemTransID,
		"linkURL":       r.LinkURL,
		"email":         r.Email,
		"phone":         r.Phone,
	}
	if withRequestParameters && r.request != nil {
		result["requestParameters"] = r.request.ToMap()
	}
	return result
}

func (r *PaymentLinkResponse) String() string {
	encoded, err := json.Marshal(r)
	if err != nil {
		return r.Result
	}
	return string(encoded)
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
