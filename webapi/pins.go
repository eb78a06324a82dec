package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// PinsList returns the items pinned to channel.
func (w *WebAPI) PinsList(ctx context.Context, channel string) ([]model.Item, error) {
	env, err := w.call(ctx, endpoint.PinsList, httpclient.Params{"channel": httpclient.String(channel)})
	if err != nil {
		return nil, err
	}
	return decode[[]model.Item](env, "items")
}

// PinItem pins ref to ref.Channel.
func (w *WebAPI) PinItem(ctx context.Context, ref ItemRef) error {
	return w.exec(ctx, endpoint.PinsAdd, ref.params())
}

// UnpinItem removes the pin of ref from ref.Channel.
func (w *WebAPI) UnpinItem(ctx context.Context, ref ItemRef) error {
	return w.exec(ctx, endpoint.PinsRemove, ref.params())
}
