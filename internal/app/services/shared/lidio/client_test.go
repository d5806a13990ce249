package lidio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCredentials_Validate(t *testing.T) {
	t.Run("strips trailing slash", func(t *testing.T) {
		creds := testCredentials
		creds.APIURL = "https://test.lidio.com/api/"

		validated, err := creds.Validate()
		require.NoError(t, err)
		assert.Equal(t, "https://test.lidio.com/api", validated.APIURL)
	})

	t.Run("missing values are a configuration error", func(t *testing.T) {
		for _, clear := range []func(*Credentials){
			func(c *Credentials) { c.APIURL = "" },
			func(c *Credentials) { c.MerchantCode = "" },
			func(c *Credentials) { c.AuthorizationKey = "" },
			func(c *Credentials) { c.APIPassword = "" },
			func(c *Credentials) { c.MerchantKey = "" },
		} {
			creds := testCredentials
			clear(&creds)

			_, err := NewClient(creds)
			assert.ErrorIs(t, err, exceptions.ErrKindConfig)
		}
	})

	t.Run("malformed url", func(t *testing.T) {
		creds := testCredentials
		creds.APIURL = "not a url"

		_, err := creds.Validate()
		assert.ErrorIs(t, err, exceptions.ErrKindConfig)
	})
}

func TestClient_PaymentLinkOverHTTP(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/CreatePaymentLink", r.URL.Path)
		assert.Equal(t, "auth-key", r.Header.Get(constvars.HeaderAuthorization))
		assert.Equal(t, "M-100", r.Header.Get(constvars.LidioHeaderMerchantCode))
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"result":"Success","orderId":"ORD-1","systemTransId":123456,"linkURL":"https://pay/l/1","email":"buyer@example.com","phone":"555"}`))
	}))
	defer server.Close()

	creds := testCredentials
	creds.APIURL = server.URL + "/api/"
	client, err := NewClient(creds, WithLogger(zap.NewNop()), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	b := client.PaymentLink()
	fillRequired(t, b)
	require.NoError(t, b.SetTotalAmount(10))

	response, err := b.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", response.OrderID)
	assert.Equal(t, "123456", response.SystemTransID)
	assert.Equal(t, "https://pay/l/1", response.LinkURL)
	assert.Equal(t, "TRY", received["currency"])
	assert.Equal(t, "10.00", received["totalAmount"])
}

func TestHTTPTransport_Call(t *testing.T) {
	t.Run("non 2xx status is an error carrying the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		creds := testCredentials
		creds.APIURL = server.URL
		transport := NewHTTPTransport(creds, server.Client(), zap.NewNop())

		_, err := transport.Call(context.Background(), "/CreatePaymentLink", map[string]any{}, "post")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "upstream exploded")
	})

	t.Run("context deadline stops the call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		creds := testCredentials
		creds.APIURL = server.URL
		transport := NewHTTPTransport(creds, server.Client(), nil)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := transport.Call(ctx, "CreatePaymentLink", nil, "post")
		assert.Error(t, err)
	})

	t.Run("get sends no body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{"result":"Success"}`))
		}))
		defer server.Close()

		creds := testCredentials
		creds.APIURL = server.URL
		transport := NewHTTPTransport(creds, server.Client(), nil)

		result, err := transport.Call(context.Background(), "Status", map[string]any{"x": 1}, "get")
		require.NoError(t, err)
		assert.Equal(t, "Success", result["result"])
	})

	t.Run("transport errors surface as gateway transport errors on submit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		creds := testCredentials
		creds.APIURL = server.URL
		client, err := NewClient(creds, WithHTTPClient(server.Client()))
		require.NoError(t, err)

		b := client.PaymentLink()
		fillRequired(t, b)

		_, err = b.Submit(context.Background())
		assert.ErrorIs(t, err, exceptions.ErrKindTransport)
	})
}

func TestClient_HandleWebhook(t *testing.T) {
	client, err := NewClient(testCredentials, WithCaller(&stubCaller{}))
	require.NoError(t, err)

	body := encodeFixture(t, notificationPayloadFixture())
	n, err := client.HandleWebhook(body, signedHeader(body, testCredentials.APIPassword))
	require.NoError(t, err)
	assert.True(t, n.VerifySignatures())
	assert.Equal(t, signedHeader(body, "secret").Get(constvars.LidioHeaderParametersHash), n.SignatureHeader())
}
