// Package requestkit prepares raw HTTP request text before it is sent.
//
// It substitutes {{VAR}} placeholders in the URL, header values and body with
// values from a local .env file or the process environment, percent-encodes
// the resulting URL and hands back a configured resty request. Nothing is sent
// by this package; the caller decides what to do with the prepared request.
//
// Basic usage:
//
//	client := requestkit.NewClient(requestkit.WithRequestID())
//	req, err := client.Prepare(ctx, requestkit.RawRequest{
//		Method:  "GET",
//		URL:     "https://{{HOST}}/users?q=a b",
//		Headers: []requestkit.Header{{Name: "Authorization", Value: "Bearer {{TOKEN}}"}},
//	})
//	if err != nil {
//		return err
//	}
//	rsp, err := req.Send()
package requestkit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/git-hulk/requestkit/pkg/common"
	"github.com/git-hulk/requestkit/pkg/logger"
	"github.com/git-hulk/requestkit/pkg/serialize"
	"github.com/git-hulk/requestkit/pkg/substitute"
	"github.com/git-hulk/requestkit/pkg/urlenc"
)

// RequestIDHeader is stamped on prepared requests when WithRequestID is set.
const RequestIDHeader = "X-Request-Id"

// ErrInvalidMethod is returned for methods outside common.HTTPMethods.
var ErrInvalidMethod = errors.New("invalid request method")

// Header is a single request header. Only the value is a template.
type Header struct {
	Name  string
	Value string
}

// RawRequest is the unresolved text of a request.
type RawRequest struct {
	Method  string
	URL     string
	Headers []Header
	Body    string
}

// Structure renders the raw request as an ordered document, suitable for
// serialize.Serialize.
func (r RawRequest) Structure() *serialize.Structure {
	headers := serialize.NewStructure()
	for _, h := range r.Headers {
		headers.Set(h.Name, serialize.String(h.Value))
	}
	return serialize.NewStructure().
		Set("method", serialize.String(r.Method)).
		Set("url", serialize.String(r.URL)).
		Set("headers", headers).
		Set("body", serialize.String(r.Body))
}

// Client prepares requests against a shared resty client.
type Client struct {
	restyCli    *resty.Client
	substitutor *substitute.Substitutor
	requestID   bool
	logger      *zap.Logger
}

// ClientOption is a function that configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	httpClient  *http.Client
	restyCli    *resty.Client
	substitutor *substitute.Substitutor
	requestID   bool
	logger      *zap.Logger
}

// WithHTTPClient sets the HTTP client the prepared requests will be sent with.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(config *clientConfig) {
		config.httpClient = httpClient
	}
}

// WithRestyClient uses an existing resty client, e.g. one that already carries
// a base URL or authentication. It takes precedence over WithHTTPClient.
func WithRestyClient(cli *resty.Client) ClientOption {
	return func(config *clientConfig) {
		config.restyCli = cli
	}
}

// WithSubstitutor sets the placeholder resolver. Defaults to substitute.New().
func WithSubstitutor(s *substitute.Substitutor) ClientOption {
	return func(config *clientConfig) {
		config.substitutor = s
	}
}

// WithRequestID stamps a random X-Request-Id header on every prepared request
// that does not already carry one.
func WithRequestID() ClientOption {
	return func(config *clientConfig) {
		config.requestID = true
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(l *zap.Logger) ClientOption {
	return func(config *clientConfig) {
		config.logger = l
	}
}

// NewClient creates a new Client.
func NewClient(options ...ClientOption) *Client {
	config := &clientConfig{}
	for _, option := range options {
		option(config)
	}

	restyCli := config.restyCli
	if restyCli == nil {
		if config.httpClient != nil {
			restyCli = resty.NewWithClient(config.httpClient)
		} else {
			restyCli = resty.New()
		}
	}
	l := config.logger
	if l == nil {
		l = logger.Named("requestkit")
	}
	substitutor := config.substitutor
	if substitutor == nil {
		substitutor = substitute.New(substitute.WithLogger(l))
	}

	return &Client{
		restyCli:    restyCli,
		substitutor: substitutor,
		requestID:   config.requestID,
		logger:      l,
	}
}

// Resty returns the underlying resty client.
func (c *Client) Resty() *resty.Client {
	return c.restyCli
}

// Prepare resolves every placeholder of raw against one snapshot of the
// variable file, encodes the URL and returns a request ready to Send. If any
// placeholder is unresolved no request is built.
func (c *Client) Prepare(ctx context.Context, raw RawRequest) (*resty.Request, error) {
	method := strings.ToUpper(raw.Method)
	if method == "" {
		method = http.MethodGet
	}
	if !common.HTTPMethods.Contains(method) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, raw.Method)
	}

	c.logger.Debug("prepare request",
		zap.String("raw", serialize.Serialize(raw.Structure(), false)))

	templates := make([]string, 0, len(raw.Headers)+2)
	templates = append(templates, raw.URL, raw.Body)
	for _, h := range raw.Headers {
		templates = append(templates, h.Value)
	}
	resolved, err := c.substitutor.ResolveAll(templates...)
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}

	encodedURL, err := urlenc.Encode(resolved[0])
	if err != nil {
		return nil, fmt.Errorf("encode url: %w", err)
	}

	req := c.restyCli.R().SetContext(ctx)
	for i, h := range raw.Headers {
		req.SetHeader(h.Name, resolved[i+2])
	}
	if c.requestID && req.Header.Get(RequestIDHeader) == "" {
		req.SetHeader(RequestIDHeader, uuid.Must(uuid.NewV4()).String())
	}
	if body := resolved[1]; body != "" {
		req.SetBody(body)
	}
	req.Method = method
	req.URL = encodedURL
	return req, nil
}
