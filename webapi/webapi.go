package webapi

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/errors"
	"github.com/kbukum/slackweb/httpclient"
)

const paramToken = "token"

// WebAPI calls Web API methods with a fixed token.
type WebAPI struct {
	client *httpclient.Client
	token  string
	now    func() time.Time
}

// New creates a WebAPI with its own client.
func New(token string, cfg httpclient.Config) (*WebAPI, error) {
	c, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithClient(token, c), nil
}

// NewWithClient creates a WebAPI that shares c. A nil c uses
// httpclient.Default.
func NewWithClient(token string, c *httpclient.Client) *WebAPI {
	if c == nil {
		c = httpclient.Default()
	}
	return &WebAPI{client: c, token: token, now: time.Now}
}

// Client returns the underlying client.
func (w *WebAPI) Client() *httpclient.Client { return w.client }

// call adds the token and performs ep.
func (w *WebAPI) call(ctx context.Context, ep endpoint.Endpoint, params httpclient.Params) (httpclient.Envelope, error) {
	return callWithToken(ctx, w.client, w.token, ep, params)
}

// exec performs ep and keeps only the error.
func (w *WebAPI) exec(ctx context.Context, ep endpoint.Endpoint, params httpclient.Params) error {
	_, err := w.call(ctx, ep, params)
	return err
}

func callWithToken(ctx context.Context, c *httpclient.Client, token string, ep endpoint.Endpoint, params httpclient.Params) (httpclient.Envelope, error) {
	if c == nil {
		c = httpclient.Default()
	}
	if params == nil {
		params = httpclient.Params{}
	}
	params[paramToken] = httpclient.String(token)
	return c.Do(ctx, ep, params)
}

// decode extracts key from env into a T. An empty key decodes the whole
// envelope.
func decode[T any](env httpclient.Envelope, key string) (T, error) {
	var v T
	ok, err := env.Decode(key, &v)
	if err != nil {
		return v, errors.ClientJSON(200, err)
	}
	if !ok {
		return v, errors.MissingField(key)
	}
	return v, nil
}

func stringField(env httpclient.Envelope, key string) (string, error) {
	s, ok := env.String(key)
	if !ok {
		return "", errors.MissingField(key)
	}
	return s, nil
}

// joined renders a list parameter as Slack expects: comma separated, absent
// when empty.
func joined(items []string) httpclient.Value {
	if len(items) == 0 {
		return httpclient.Absent()
	}
	return httpclient.String(strings.Join(items, ","))
}

// positive renders n when it is above zero, else def when def is above
// zero, else nothing.
func positive(n, def int) httpclient.Value {
	switch {
	case n > 0:
		return httpclient.Int(n)
	case def > 0:
		return httpclient.Int(def)
	}
	return httpclient.Absent()
}

// timestamp formats t the way Slack message timestamps look.
func timestamp(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', 6, 64)
}
