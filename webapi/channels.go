package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// ChannelHistory returns messages from a public channel.
func (w *WebAPI) ChannelHistory(ctx context.Context, channel string, opts HistoryOptions) (*model.History, error) {
	return w.history(ctx, channels, channel, opts)
}

// ChannelInfo returns a public channel.
func (w *WebAPI) ChannelInfo(ctx context.Context, channel string) (*model.Channel, error) {
	return w.info(ctx, channels, channel)
}

// ChannelsList returns the public channels of the workspace.
func (w *WebAPI) ChannelsList(ctx context.Context, opts ListOptions) ([]model.Channel, error) {
	return w.list(ctx, channels, opts)
}

// MarkChannel moves the read cursor of a public channel to ts.
func (w *WebAPI) MarkChannel(ctx context.Context, channel, ts string) error {
	return w.mark(ctx, channels, channel, ts)
}

// CreateChannel creates a public channel.
func (w *WebAPI) CreateChannel(ctx context.Context, name string) (*model.Channel, error) {
	env, err := w.call(ctx, endpoint.ChannelsCreate, httpclient.Params{"name": httpclient.String(name)})
	if err != nil {
		return nil, err
	}
	ch, err := decode[model.Channel](env, "channel")
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// InviteToChannel adds user to a public channel.
func (w *WebAPI) InviteToChannel(ctx context.Context, channel, user string) error {
	return w.exec(ctx, endpoint.ChannelsInvite, httpclient.Params{
		"channel": httpclient.String(channel),
		"user":    httpclient.String(user),
	})
}

// SetChannelPurpose sets the purpose of a public channel.
func (w *WebAPI) SetChannelPurpose(ctx context.Context, channel, purpose string) (string, error) {
	return w.setText(ctx, endpoint.ChannelsSetPurpose, channel, "purpose", purpose)
}

// SetChannelTopic sets the topic of a public channel.
func (w *WebAPI) SetChannelTopic(ctx context.Context, channel, topic string) (string, error) {
	return w.setText(ctx, endpoint.ChannelsSetTopic, channel, "topic", topic)
}
