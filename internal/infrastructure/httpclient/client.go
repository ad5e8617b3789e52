// Package httpclient is the single gateway to the farm API. It attaches the
// session token, normalizes every failure into a toast plus a typed error, and
// invalidates the session when the backend answers 401.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/pkg/metrics"
	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	defaultTimeout = 15 * time.Second
)

// Doer sends a prepared request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	AppBasePath string
	// Timeout applies to the default *http.Client; ignored when Doer is set.
	Timeout time.Duration
	Doer    Doer
	// OnAuthLost runs after a 401 cleared the session and before the error
	// toast is emitted.
	OnAuthLost func(domain.AuthLost)
}

// Client implements ports.API over HTTP.
type Client struct {
	baseURL    string
	loginPath  string
	doer       Doer
	session    ports.Session
	notifier   ports.Notifier
	onAuthLost func(domain.AuthLost)
	log        zerolog.Logger
}

var _ ports.API = (*Client)(nil)

func New(opts Options, sess ports.Session, notifier ports.Notifier, log zerolog.Logger) *Client {
	doer := opts.Doer
	if doer == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		loginPath:  domain.LoginPath(opts.AppBasePath),
		doer:       doer,
		session:    sess,
		notifier:   notifier,
		onAuthLost: opts.OnAuthLost,
		log:        log,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	raw, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	raw, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	raw, err := c.Do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	raw, err := c.Do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	raw, err := c.Do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

// PostForm sends fields form-encoded in the given order.
func (c *Client) PostForm(ctx context.Context, path string, fields []domain.FormField, out any) error {
	raw, err := c.send(ctx, http.MethodPost, path, strings.NewReader(EncodeForm(fields)), contentTypeForm)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

// Do sends a JSON request and returns the success payload as received. A nil
// payload means the server answered 2xx with an empty body.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if hasJSONBody(method) {
		contentType = contentTypeJSON
		if body != nil {
			data, err := encodeBody(body)
			if err != nil {
				return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
			}
			reader = bytes.NewReader(data)
		}
	}
	return c.send(ctx, method, path, reader, contentType)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	log := c.log.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	start := time.Now()
	resp, err := c.doer.Do(req)
	elapsed := time.Since(start)
	metrics.ClientRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	if err != nil {
		return nil, c.transportFailure(ctx, log, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportFailure(ctx, log, method, path, err)
	}

	metrics.ClientRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("api request completed")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return successPayload(method, path, payload)
	}
	return nil, c.failure(ctx, log, method, path, resp.StatusCode, payload)
}

// failure handles every non-2xx response.
func (c *Client) failure(ctx context.Context, log zerolog.Logger, method, path string, status int, payload []byte) error {
	if status == http.StatusUnauthorized {
		c.invalidate(ctx, log, method, path, status)
	}

	detail := domain.ParseErrorDetail(payload)
	apiErr := &domain.APIError{Status: status, Message: detail.Message(), Detail: detail}

	if status >= http.StatusBadRequest {
		c.notifier.Emit(apiErr.Message, domain.ToastError, domain.DefaultToastDuration)
	}
	log.Warn().Int("status", status).Str("detail", apiErr.Message).Msg("api request failed")
	return apiErr
}

// invalidate drops the session token and signals the composition root.
func (c *Client) invalidate(ctx context.Context, log zerolog.Logger, method, path string, status int) {
	if c.session != nil {
		if err := c.session.Clear(ctx); err != nil {
			log.Error().Err(err).Msg("failed to clear session after 401")
		}
	}
	metrics.SessionInvalidationsTotal.Inc()
	log.Info().Str("redirect_to", c.loginPath).Msg("session invalidated")

	if c.onAuthLost != nil {
		c.onAuthLost(domain.AuthLost{
			Method:     method,
			Path:       path,
			Status:     status,
			RedirectTo: c.loginPath,
		})
	}
}

func (c *Client) transportFailure(ctx context.Context, log zerolog.Logger, method, path string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug().Err(ctxErr).Msg("api request cancelled")
		return fmt.Errorf("%s %s: %w", method, path, ctxErr)
	}
	metrics.ClientNetworkErrorsTotal.Inc()
	log.Warn().Err(err).Msg("api server unreachable")
	c.notifier.Emit(domain.UnreachableMessage, domain.ToastError, domain.DefaultToastDuration)
	return &domain.NetworkError{Method: method, Path: path, Err: err}
}

// token reads the session token. An unreadable store sends the request
// unauthenticated and lets the backend decide.
func (c *Client) token(ctx context.Context) string {
	if c.session == nil {
		return ""
	}
	tok, err := c.session.Token(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("session token unavailable")
		return ""
	}
	return tok
}

func (c *Client) url(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "?") {
		path = "/" + path
	}
	return c.baseURL + path
}

func successPayload(method, path string, payload []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%s %s: response is not valid JSON", method, path)
	}
	return json.RawMessage(trimmed), nil
}

func decodeInto(raw json.RawMessage, out any) error {
	if out == nil || raw == nil {
		return nil
	}
	if dst, ok := out.(*json.RawMessage); ok {
		*dst = raw
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	default:
		return json.Marshal(body)
	}
}

func hasJSONBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPatch, http.MethodPut:
		return true
	}
	return false
}

type discardNotifier struct{}

func (discardNotifier) Emit(string, domain.ToastType, time.Duration) {}

// IsUnauthorized reports whether err came from a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}
