package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 10 * time.Second
	requestIDHeader       = "X-Request-ID"
)

// Options configures a Client. Only BaseURL is required.
type Options struct {
	BaseURL           string
	HTTPClient        *http.Client
	Timeout           time.Duration
	RequestsPerSecond float64
	Logger            *slog.Logger
}

// Client is the single gateway to the password API. It attaches the bearer
// token read from the session accessor and reports unauthorized responses
// back to it.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	session      ports.SessionAccessor
	limiter      *rate.Limiter
	logger       *slog.Logger
	newRequestID func() string
}

var (
	_ ports.AuthAPI       = (*Client)(nil)
	_ ports.CredentialAPI = (*Client)(nil)
	_ ports.BindingAPI    = (*Client)(nil)
)

var errNilSession = errors.New("session accessor is nil")

func NewClient(opts Options, session ports.SessionAccessor) (*Client, error) {
	if session == nil {
		return nil, errNilSession
	}
	if _, err := buildAPIURL(opts.BaseURL, "/api"); err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:      opts.BaseURL,
		httpClient:   httpClient,
		timeout:      timeout,
		session:      session,
		limiter:      limiter,
		logger:       logging.OrDiscard(opts.Logger),
		newRequestID: func() string { return uuid.NewString() },
	}, nil
}

type request struct {
	op            string
	method        string
	path          string
	body          any
	rawBody       []byte
	contentType   string
	authenticated bool
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint, err := buildAPIURL(c.baseURL, req.path)
	if err != nil {
		return err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &domain.TransportError{Op: req.op, Err: err}
		}
	}

	var body io.Reader
	contentType := req.contentType
	switch {
	case req.rawBody != nil:
		body = bytes.NewReader(req.rawBody)
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.op, err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	requestID := c.newRequestID()
	httpReq.Header.Set(requestIDHeader, requestID)
	if req.authenticated {
		if token := c.session.AccessToken(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("remote request failed", "op", req.op, "request_id", requestID, "error", err)
		return &domain.TransportError{Op: req.op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("remote request",
		"op", req.op,
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(started),
	)

	if resp.StatusCode == http.StatusUnauthorized && req.authenticated {
		message := decodeMessage(resp)
		c.session.HandleUnauthorized(ctx)
		return &domain.AuthorizationError{Op: req.op, StatusCode: resp.StatusCode, Message: message}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RemoteError{Op: req.op, StatusCode: resp.StatusCode, Message: decodeMessage(resp)}
	}

	if out == nil {
		return nil
	}

	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &domain.RemoteError{Op: req.op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}

	return nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout)
}

func decodeMessage(resp *http.Response) string {
	var payload messageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}

func escapeID(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
