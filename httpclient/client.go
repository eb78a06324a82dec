package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/errors"
	"github.com/kbukum/slackweb/logger"
	"github.com/kbukum/slackweb/observability"
	"github.com/kbukum/slackweb/resilience"
)

const spanAPICall = "slack.api.call"

// Result is the single completion delivered by Go. Exactly one of Envelope
// and Err is set.
type Result struct {
	Envelope Envelope
	Err      error
}

// Client sends Web API calls. It is safe for concurrent use; every call owns
// its own request and completion.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	rl         *resilience.TierLimiter
	bh         *resilience.Bulkhead
}

// New creates a client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
	}

	c := &Client{
		httpClient: httpClient,
		config:     cfg,
		log:        cfg.Logger.WithComponent("slack.httpclient"),
	}
	if cfg.RateLimiter != nil {
		c.rl = resilience.NewTierLimiter(*cfg.RateLimiter)
	}
	if cfg.Bulkhead != nil {
		c.bh = resilience.NewBulkhead(*cfg.Bulkhead)
	}
	return c, nil
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// Default returns a shared client for the production API with default
// settings.
func Default() *Client {
	defaultOnce.Do(func() {
		c, err := New(Config{})
		if err != nil {
			panic(fmt.Sprintf("httpclient: default config rejected: %v", err))
		}
		defaultClient = c
	})
	return defaultClient
}

// BaseURL returns the API root the client sends to.
func (c *Client) BaseURL() string { return c.config.BaseURL }

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client { return c.httpClient }

// Do performs one call to ep and classifies the response. There is no retry.
func (c *Client) Do(ctx context.Context, ep endpoint.Endpoint, params Params) (Envelope, error) {
	req, err := BuildRequest(c.config.BaseURL, ep, params)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, ep, req)
}

// Upload sends data to files.upload as a multipart body. params must hold
// string "filename" and "filetype" entries.
func (c *Client) Upload(ctx context.Context, data []byte, params Params) (Envelope, error) {
	req, err := BuildUploadRequest(c.config.BaseURL, params, data, RandomBoundary())
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, endpoint.FilesUpload, req)
}

// Go performs the call on its own goroutine. The returned channel receives
// exactly one Result and is then closed.
func (c *Client) Go(ctx context.Context, ep endpoint.Endpoint, params Params) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				out <- Result{Err: errors.New(errors.ErrCodeUnknown).WithCause(fmt.Errorf("panic: %v", r))}
			}
		}()
		env, err := c.Do(ctx, ep, params)
		if err != nil {
			out <- Result{Err: err}
			return
		}
		out <- Result{Envelope: env}
	}()
	return out
}

// DoSync blocks until the call completes and returns the envelope, or nil on
// any failure. The error is discarded; it is only logged at debug level.
// Use Do when the error matters.
func (c *Client) DoSync(ep endpoint.Endpoint, params Params) Envelope {
	res := <-c.Go(context.Background(), ep, params)
	if res.Err != nil {
		c.log.Debug("synchronous call failed", logger.Fields(
			logger.FieldMethod, ep.Path(),
			logger.FieldCode, string(errors.CodeOf(res.Err)),
		))
		return nil
	}
	return res.Envelope
}

// PostJSON posts body to rawURL. It succeeds whenever a response arrives;
// the status and body are not inspected.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body []byte) error {
	req, err := BuildJSONRequest(rawURL, body)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, req)
	if err != nil {
		return errors.ClientNetwork(err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	c.log.Debug("json posted", logger.Fields(logger.FieldStatus, resp.StatusCode))
	return nil
}

// execute sends a built request and classifies the outcome.
func (c *Client) execute(ctx context.Context, ep endpoint.Endpoint, req *Request) (Envelope, error) {
	if c.bh == nil {
		return c.executeOnce(ctx, ep, req)
	}

	var (
		env     Envelope
		callErr error
	)
	err := c.bh.Execute(ctx, func() error {
		env, callErr = c.executeOnce(ctx, ep, req)
		return nil
	})
	if err != nil {
		return nil, errors.ClientNetwork(fmt.Errorf("bulkhead: %w", err))
	}
	return env, callErr
}

func (c *Client) executeOnce(ctx context.Context, ep endpoint.Endpoint, req *Request) (Envelope, error) {
	requestID := uuid.NewString()
	start := time.Now()

	ctx, span := observability.StartSpan(ctx, spanAPICall, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrSlackMethod, ep.Path()),
		attribute.String(observability.AttrRequestID, requestID),
	)
	if c.config.Metrics != nil {
		c.config.Metrics.RecordCallStart(ctx)
	}

	env, status, err := c.roundTrip(ctx, ep, req)

	duration := time.Since(start)
	code := string(errors.CodeOf(err))
	span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
		span.SetAttributes(attribute.String(observability.AttrErrorCode, code))
	}
	if c.config.Metrics != nil {
		c.config.Metrics.RecordCallEnd(ctx, ep.Path(), code, duration)
	}

	fields := logger.DurationFields(ep.Path(), duration)
	fields[logger.FieldHTTPVerb] = req.Method
	fields[logger.FieldStatus] = status
	fields[logger.FieldRequestID] = requestID
	if err != nil {
		fields[logger.FieldCode] = code
		c.log.Debug("api call failed", fields)
	} else {
		c.log.Debug("api call", fields)
	}
	return env, err
}

// roundTrip paces, sends and classifies a single request.
func (c *Client) roundTrip(ctx context.Context, ep endpoint.Endpoint, req *Request) (Envelope, int, error) {
	if c.rl != nil {
		if err := c.rl.Wait(ctx, ep.Tier()); err != nil {
			return nil, 0, errors.ClientNetwork(fmt.Errorf("rate limiter: %w", err))
		}
	}

	resp, err := c.send(ctx, req)
	if err != nil {
		env, cerr := Classify(nil, 0, err)
		return env, 0, cerr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		env, cerr := Classify(nil, resp.StatusCode, fmt.Errorf("read response body: %w", err))
		return env, resp.StatusCode, cerr
	}

	env, cerr := Classify(body, resp.StatusCode, nil)
	if cerr != nil && resp.StatusCode == http.StatusTooManyRequests {
		if e, ok := errors.AsError(cerr); ok {
			e.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		}
	}
	return env, resp.StatusCode, cerr
}

// send issues req over the wire.
func (c *Client) send(ctx context.Context, req *Request) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, req.bodyReader())
	if err != nil {
		return nil, err
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, redactQuery(err)
	}
	return resp, nil
}

// redactQuery drops the query string, and with it the token, from the URL
// that net/http embeds in transport errors.
func redactQuery(err error) error {
	ue, ok := err.(*url.Error)
	if !ok {
		return err
	}
	cp := *ue
	if i := strings.IndexByte(cp.URL, '?'); i >= 0 {
		cp.URL = cp.URL[:i]
	}
	return &cp
}

// parseRetryAfter reads a delay in whole seconds. Anything else yields 0.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
