package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"lidio-service/internal/app/services/shared/lidio"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setLidioEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LIDIO_API_URL", "https://test.lidio.com/api")
	t.Setenv("LIDIO_MERCHANT_CODE", "M-100")
	t.Setenv("LIDIO_AUTHORIZATION_KEY", "auth-key")
	t.Setenv("LIDIO_API_PASSWORD", "secret")
	t.Setenv("LIDIO_MERCHANT_KEY", "merchant-key")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunPreview(t *testing.T) {
	setLidioEnv(t)
	path := writeFile(t, "request.json", `{
		"orderId": "ORD-1",
		"totalAmount": 10.005,
		"customerInfo": {"email": "buyer@example.com", "customerId": "C-1"},
		"paymentMethods": [{"name": "WireTransfer"}],
		"basketItems": [{"name": "X", "quantity": 1, "unitPrice": 10.005}]
	}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
	assert.Equal(t, "ORD-1", body["orderId"])
	assert.Equal(t, "10.01", body["totalAmount"])
	assert.Equal(t, "TRY", body["currency"])
}

func TestRunPreviewRejectsIncompleteRequest(t *testing.T) {
	setLidioEnv(t)
	path := writeFile(t, "request.json", `{"orderId": "ORD-1"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "customerInfo")
}

func TestRunVerify(t *testing.T) {
	setLidioEnv(t)
	notification := `{"action":"Payment","paymentResult":"Success","companyInfo":{"merchantKey":"merchant-key"},` +
		`"processInfo":{"orderId":"ORD-1"},"customerInfo":{"email":"a@b.co"},"basketItems":[{"name":"X"}],"paymentList":[{"amount":1}]}`
	path := writeFile(t, "notification.json", notification)
	signature := lidio.Signature([]byte(notification), "secret")

	t.Run("valid signature", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-verify", path, "-signature", signature}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), `"signaturesVerified": true`)
	})

	t.Run("invalid signature", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-verify", path, "-signature", "forged"}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "signature does not match")
		assert.NotContains(t, stderr.String(), signature)
		assert.NotContains(t, stdout.String(), signature)
	})
}

func TestRunUsage(t *testing.T) {
	setLidioEnv(t)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
}
