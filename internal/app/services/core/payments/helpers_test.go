package payments

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"lidio-service/internal/app/config"
	"lidio-service/internal/app/contracts"
	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCredentials = lidio.Credentials{
	APIURL:           "https://test.lidio.com/api",
	MerchantCode:     "M-100",
	AuthorizationKey: "auth-key",
	APIPassword:      "secret",
	MerchantKey:      "merchant-key",
}

type callerFunc func(ctx context.Context, endpoint string, body any, method string) (map[string]any, error)

func (f callerFunc) Call(ctx context.Context, endpoint string, body any, method string) (map[string]any, error) {
	return f(ctx, endpoint, body, method)
}

type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	err     error
	deleted []string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}}
}

func (m *memoryRedis) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(encoded)
	return nil
}

func (m *memoryRedis) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryRedis) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	encoded, _ := json.Marshal(value)
	m.values[key] = string(encoded)
	return true, nil
}

type recordingPublisher struct {
	messages []*contracts.NotificationMessage
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, message *contracts.NotificationMessage) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, message)
	return nil
}

var errBrokerDown = errors.New("broker down")

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Lidio: config.AppLidio{
			RequestTimeoutInSeconds: 5,
			PaymentLinkTTLInHours:   24,
		},
		Notification: config.AppNotification{
			Queue:                  "lidio.notifications",
			ReplayTTLInMinutes:     60,
			PublishTimeoutInSecond: 5,
		},
	}
}

func newTestClient(t *testing.T, caller lidio.Caller) *lidio.Client {
	t.Helper()
	client, err := lidio.NewClient(testCredentials, lidio.WithCaller(caller), lidio.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	return client
}

func notificationFixture() map[string]any {
	return map[string]any{
		"action":        constvars.LidioActionPayment,
		"paymentResult": constvars.LidioPaymentResultSuccess,
		"companyInfo":   map[string]any{"merchantKey": "merchant-key"},
		"processInfo": map[string]any{
			"orderId":              "ORD-1",
			"merchantCustomField":  "token-1",
			"totalAmountRequested": "150.00",
			"totalAmountProcessed": "150.00",
		},
		"customerInfo": map[string]any{"email": "buyer@example.com"},
		"basketItems":  []any{map[string]any{"name": "Consultation"}},
		"paymentList":  []any{map[string]any{"amount": "150.00"}},
	}
}

func signedNotification(t *testing.T, payload map[string]any) ([]byte, http.Header) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	header := http.Header{}
	header.Set(constvars.LidioHeaderParametersHash, lidio.Signature(body, testCredentials.APIPassword))
	return body, header
}
