package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	defaults "github.com/mcuadros/go-defaults"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type HTTPAuthConfig struct {
	Type string `mapstructure:"type" json:"type" yaml:"type" validate:"required,oneof=basic api_key bearer"`

	// basic auth
	Username string `mapstructure:"username,omitempty" json:"username,omitempty" yaml:"username,omitempty" validate:"required_if=Type basic"`
	Password string `mapstructure:"password,omitempty" json:"password,omitempty" yaml:"password,omitempty" validate:"required_if=Type basic"`

	// api key
	In    string `mapstructure:"in,omitempty" json:"in,omitempty" yaml:"in,omitempty" validate:"required_if=Type api_key,omitempty,oneof=query header"`
	Key   string `mapstructure:"key,omitempty" json:"key,omitempty" yaml:"key,omitempty" validate:"required_if=Type api_key"`
	Value string `mapstructure:"value,omitempty" json:"value,omitempty" yaml:"value,omitempty" validate:"required_if=Type api_key"`

	// bearer
	Token string `mapstructure:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty" validate:"required_if=Type bearer"`
}

// HTTPClientConfig describes an outgoing webhook endpoint
type HTTPClientConfig struct {
	URL        string            `mapstructure:"url" json:"url" yaml:"url" validate:"required,url"`
	Headers    map[string]string `mapstructure:"headers,omitempty" json:"headers,omitempty" yaml:"headers,omitempty"`
	Auth       *HTTPAuthConfig   `mapstructure:"auth,omitempty" json:"auth,omitempty" yaml:"auth,omitempty" validate:"omitempty"`
	Timeout    time.Duration     `mapstructure:"timeout" json:"timeout" yaml:"timeout" default:"10s"`
	RetryCount int               `mapstructure:"retry_count" json:"retry_count" yaml:"retry_count" default:"3" validate:"min=0"`

	// Transport overrides the base round tripper, mainly for tests
	Transport http.RoundTripper `mapstructure:"-" json:"-" yaml:"-"`
}

// HTTPClient posts JSON payloads to a configured endpoint with retries and
// tracing on every attempt
type HTTPClient struct {
	httpClient *http.Client
	config     *HTTPClientConfig
}

func NewHTTPClient(config *HTTPClientConfig, name string) (*HTTPClient, error) {
	defaults.SetDefaults(config)
	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	retryable := &RetryableTransport{
		Transport:  config.Transport,
		RetryCount: config.RetryCount,
	}
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: otelhttp.NewTransport(retryable,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					return fmt.Sprintf("%s %s", name, r.Method)
				}),
			),
		},
		config: config,
	}, nil
}

func (c *HTTPClient) URL() string {
	return c.config.URL
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.config.Auth == nil {
		return
	}

	switch c.config.Auth.Type {
	case "basic":
		req.SetBasicAuth(c.config.Auth.Username, c.config.Auth.Password)
	case "api_key":
		switch c.config.Auth.In {
		case "query":
			q := req.URL.Query()
			q.Add(c.config.Auth.Key, c.config.Auth.Value)
			req.URL.RawQuery = q.Encode()
		case "header":
			req.Header.Add(c.config.Auth.Key, c.config.Auth.Value)
		}
	case "bearer":
		req.Header.Add("Authorization", "Bearer "+c.config.Auth.Token)
	}
}

// PostJSON sends body to the configured URL and fails on non 2xx responses
func (c *HTTPClient) PostJSON(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	c.setAuth(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer drainBody(res)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected response status %d from %s", res.StatusCode, c.config.URL)
	}
	return nil
}
