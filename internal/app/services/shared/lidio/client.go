package lidio

import (
	"net/http"
	"strings"
	"time"

	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Credentials are the merchant settings issued by Lidio.
type Credentials struct {
	APIURL           string `validate:"required,url"`
	MerchantCode     string `validate:"required"`
	AuthorizationKey string `validate:"required"`
	APIPassword      string `validate:"required"`
	MerchantKey      string `validate:"required"`
}

// Validate checks every value is present and returns a copy with the API root's trailing slash removed.
func (c Credentials) Validate() (Credentials, error) {
	if err := utils.ValidateStruct(c); err != nil {
		return Credentials{}, exceptions.ErrConfigInvalid(err)
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	return c, nil
}

type Client struct {
	creds      Credentials
	caller     Caller
	httpClient *http.Client
	log        *zap.Logger
	now        func() time.Time
}

type Option func(*Client)

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCaller replaces the HTTP transport.
func WithCaller(caller Caller) Option {
	return func(c *Client) {
		c.caller = caller
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	validated, err := creds.Validate()
	if err != nil {
		return nil, err
	}

	client := &Client{
		creds: validated,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.caller == nil {
		client.caller = NewHTTPTransport(validated, client.httpClient, client.log)
	}
	return client, nil
}

func (c *Client) Credentials() Credentials {
	return c.creds
}

// PaymentLink starts a new request bound to this client's transport.
func (c *Client) PaymentLink() *PaymentLinkBuilder {
	builder := NewPaymentLinkBuilder(c.caller, c.log)
	builder.now = c.now
	return builder
}

// HandleWebhook parses an inbound notification. No verification is run.
func (c *Client) HandleWebhook(rawBody []byte, header http.Header) (*PaymentNotification, error) {
	return ParsePaymentNotification(rawBody, header, c.creds)
}
