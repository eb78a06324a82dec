package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// IMHistory returns messages from a direct message channel.
func (w *WebAPI) IMHistory(ctx context.Context, im string, opts HistoryOptions) (*model.History, error) {
	return w.history(ctx, ims, im, opts)
}

// IMsList returns the caller's direct message channels.
func (w *WebAPI) IMsList(ctx context.Context, opts ListOptions) ([]model.Channel, error) {
	return w.list(ctx, ims, opts)
}

// MarkIM moves the read cursor of a direct message channel to ts.
func (w *WebAPI) MarkIM(ctx context.Context, im, ts string) error {
	return w.mark(ctx, ims, im, ts)
}

// OpenIM opens a direct message channel with user and returns its id.
func (w *WebAPI) OpenIM(ctx context.Context, user string) (string, error) {
	env, err := w.call(ctx, endpoint.IMOpen, httpclient.Params{"user": httpclient.String(user)})
	if err != nil {
		return "", err
	}
	ch, err := decode[model.Channel](env, "channel")
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}

// CloseIM closes a direct message channel.
func (w *WebAPI) CloseIM(ctx context.Context, im string) error {
	return w.closeConversation(ctx, endpoint.IMClose, im)
}
