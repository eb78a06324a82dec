package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// MPIMHistory returns messages from a multi-party direct message.
func (w *WebAPI) MPIMHistory(ctx context.Context, mpim string, opts HistoryOptions) (*model.History, error) {
	return w.history(ctx, mpims, mpim, opts)
}

// MPIMsList returns the caller's multi-party direct messages.
func (w *WebAPI) MPIMsList(ctx context.Context, opts ListOptions) ([]model.Channel, error) {
	return w.list(ctx, mpims, opts)
}

// MarkMPIM moves the read cursor of a multi-party direct message to ts.
func (w *WebAPI) MarkMPIM(ctx context.Context, mpim, ts string) error {
	return w.mark(ctx, mpims, mpim, ts)
}

// OpenMPIM opens a multi-party direct message with users and returns its id.
func (w *WebAPI) OpenMPIM(ctx context.Context, users []string) (string, error) {
	env, err := w.call(ctx, endpoint.MPIMOpen, httpclient.Params{"users": joined(users)})
	if err != nil {
		return "", err
	}
	g, err := decode[model.Channel](env, "group")
	if err != nil {
		return "", err
	}
	return g.ID, nil
}

// CloseMPIM closes a multi-party direct message.
func (w *WebAPI) CloseMPIM(ctx context.Context, mpim string) error {
	return w.closeConversation(ctx, endpoint.MPIMClose, mpim)
}
