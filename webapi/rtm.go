package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
)

// RTMStartOptions tunes rtm.start. Nil pointers are not sent.
type RTMStartOptions struct {
	BatchPresenceAware bool
	MPIMAware          *bool
	NoLatest           bool
	NoUnreads          *bool
	PresenceSub        bool
	SimpleLatest       *bool
}

// RTMConnectOptions tunes rtm.connect.
type RTMConnectOptions struct {
	BatchPresenceAware bool
	PresenceSub        bool
}

// RTMStart opens a real-time session and returns the full workspace
// snapshot. A nil client uses httpclient.Default.
func RTMStart(ctx context.Context, c *httpclient.Client, token string, opts RTMStartOptions) (httpclient.Envelope, error) {
	return callWithToken(ctx, c, token, endpoint.RTMStart, httpclient.Params{
		"batch_presence_aware": httpclient.Bool(opts.BatchPresenceAware),
		"mpim_aware":           httpclient.OptBool(opts.MPIMAware),
		"no_latest":            httpclient.Bool(opts.NoLatest),
		"no_unreads":           httpclient.OptBool(opts.NoUnreads),
		"presence_sub":         httpclient.Bool(opts.PresenceSub),
		"simple_latest":        httpclient.OptBool(opts.SimpleLatest),
	})
}

// RTMConnect opens a real-time session and returns only the websocket URL
// and identity. A nil client uses httpclient.Default.
func RTMConnect(ctx context.Context, c *httpclient.Client, token string, opts RTMConnectOptions) (httpclient.Envelope, error) {
	return callWithToken(ctx, c, token, endpoint.RTMConnect, httpclient.Params{
		"batch_presence_aware": httpclient.Bool(opts.BatchPresenceAware),
		"presence_sub":         httpclient.Bool(opts.PresenceSub),
	})
}

// RTMStart calls rtm.start with the bound token.
func (w *WebAPI) RTMStart(ctx context.Context, opts RTMStartOptions) (httpclient.Envelope, error) {
	return RTMStart(ctx, w.client, w.token, opts)
}

// RTMConnect calls rtm.connect with the bound token.
func (w *WebAPI) RTMConnect(ctx context.Context, opts RTMConnectOptions) (httpclient.Envelope, error) {
	return RTMConnect(ctx, w.client, w.token, opts)
}

// RTMURL returns the websocket URL from an rtm.start or rtm.connect
// envelope.
func RTMURL(env httpclient.Envelope) (string, error) {
	return stringField(env, "url")
}
