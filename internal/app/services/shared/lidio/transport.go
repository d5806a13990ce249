package lidio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lidio-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Caller performs one gateway round trip and returns the decoded JSON object.
type Caller interface {
	Call(ctx context.Context, endpoint string, body any, method string) (map[string]any, error)
}

type HTTPTransport struct {
	apiURL           string
	merchantCode     string
	authorizationKey string
	httpClient       *http.Client
	log              *zap.Logger
}

func NewHTTPTransport(creds Credentials, httpClient *http.Client, log *zap.Logger) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPTransport{
		apiURL:           strings.TrimRight(creds.APIURL, "/"),
		merchantCode:     creds.MerchantCode,
		authorizationKey: creds.AuthorizationKey,
		httpClient:       httpClient,
		log:              log,
	}
}

// Call sends body to apiURL/endpoint. Non-2xx statuses are returned as errors carrying the body.
func (t *HTTPTransport) Call(ctx context.Context, endpoint string, body any, method string) (map[string]any, error) {
	method = strings.ToUpper(method)
	url := t.apiURL + "/" + strings.TrimPrefix(endpoint, "/")

	var payload io.Reader
	if method != http.MethodGet && body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", constvars.ErrDevCannotMarshalJSON, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevCreateHTTPRequest, err)
	}
	req.Header.Set(constvars.HeaderAuthorization, t.authorizationKey)
	req.Header.Set(constvars.LidioHeaderMerchantCode, t.merchantCode)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.Error("HTTPTransport.Call request failed",
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.String(constvars.LoggingMethodKey, method),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevSendHTTPRequest, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevReadHTTPResponse, err)
	}

	t.log.Debug("HTTPTransport.Call completed",
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.String(constvars.LoggingMethodKey, method),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lidio responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	decoder := json.NewDecoder(bytes.NewReader(respBody))
	decoder.UseNumber()
	var result map[string]any
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevCannotParseJSON, err)
	}
	return result, nil
}
