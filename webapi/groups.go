package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// GroupHistory returns messages from a private channel.
func (w *WebAPI) GroupHistory(ctx context.Context, group string, opts HistoryOptions) (*model.History, error) {
	return w.history(ctx, groups, group, opts)
}

// GroupInfo returns a private channel.
func (w *WebAPI) GroupInfo(ctx context.Context, group string) (*model.Channel, error) {
	return w.info(ctx, groups, group)
}

// GroupsList returns the private channels the caller belongs to.
func (w *WebAPI) GroupsList(ctx context.Context, opts ListOptions) ([]model.Channel, error) {
	return w.list(ctx, groups, opts)
}

// MarkGroup moves the read cursor of a private channel to ts.
func (w *WebAPI) MarkGroup(ctx context.Context, group, ts string) error {
	return w.mark(ctx, groups, group, ts)
}

// OpenGroup reopens a closed private channel.
func (w *WebAPI) OpenGroup(ctx context.Context, group string) error {
	return w.exec(ctx, endpoint.GroupsOpen, httpclient.Params{"channel": httpclient.String(group)})
}

// CloseGroup closes a private channel for the caller.
func (w *WebAPI) CloseGroup(ctx context.Context, group string) error {
	return w.closeConversation(ctx, endpoint.GroupsClose, group)
}

// SetGroupPurpose sets the purpose of a private channel.
func (w *WebAPI) SetGroupPurpose(ctx context.Context, group, purpose string) (string, error) {
	return w.setText(ctx, endpoint.GroupsSetPurpose, group, "purpose", purpose)
}

// SetGroupTopic sets the topic of a private channel.
func (w *WebAPI) SetGroupTopic(ctx context.Context, group, topic string) (string, error) {
	return w.setText(ctx, endpoint.GroupsSetTopic, group, "topic", topic)
}
