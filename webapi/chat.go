package webapi

import (
	"context"
	"encoding/json"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/errors"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// MessageOptions are the optional arguments of chat.postMessage. Nil
// pointers and empty strings are not sent.
type MessageOptions struct {
	AsUser      *bool
	Parse       ParseMode
	LinkNames   *bool
	UnfurlLinks *bool
	UnfurlMedia *bool
	Username    string
	IconURL     string
	IconEmoji   string
	Attachments []model.Attachment
}

// UpdateOptions are the optional arguments of chat.update. Parse defaults
// to ParseNone.
type UpdateOptions struct {
	Parse       ParseMode
	LinkNames   *bool
	Attachments []model.Attachment
}

// PostedMessage identifies a message Slack accepted.
type PostedMessage struct {
	Channel   string
	Timestamp string
}

// SendMessage posts text to channel.
func (w *WebAPI) SendMessage(ctx context.Context, channel, text string, opts MessageOptions) (*PostedMessage, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	params["channel"] = httpclient.String(channel)
	params["text"] = httpclient.String(text)
	return w.post(ctx, endpoint.ChatPostMessage, params)
}

// SendThreadedMessage posts text as a reply in the thread rooted at
// threadTS. With broadcast set the reply is also shown in the channel.
func (w *WebAPI) SendThreadedMessage(ctx context.Context, channel, text, threadTS string, broadcast bool, opts MessageOptions) (*PostedMessage, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	params["channel"] = httpclient.String(channel)
	params["text"] = httpclient.String(text)
	params["thread_ts"] = httpclient.String(threadTS)
	params["reply_broadcast"] = httpclient.Bool(broadcast)
	return w.post(ctx, endpoint.ChatPostMessage, params)
}

// SendMeMessage posts a /me message to channel.
func (w *WebAPI) SendMeMessage(ctx context.Context, channel, text string) (*PostedMessage, error) {
	return w.post(ctx, endpoint.ChatMeMessage, httpclient.Params{
		"channel": httpclient.String(channel),
		"text":    httpclient.String(text),
	})
}

// UpdateMessage replaces the text of the message at ts.
func (w *WebAPI) UpdateMessage(ctx context.Context, channel, ts, text string, opts UpdateOptions) error {
	attachments, err := encodeAttachments(opts.Attachments)
	if err != nil {
		return err
	}
	parse := opts.Parse
	if parse == "" {
		parse = ParseNone
	}
	return w.exec(ctx, endpoint.ChatUpdate, httpclient.Params{
		"channel":     httpclient.String(channel),
		"ts":          httpclient.String(ts),
		"text":        httpclient.String(text),
		"parse":       httpclient.String(string(parse)),
		"link_names":  httpclient.OptBool(opts.LinkNames),
		"attachments": attachments,
	})
}

// DeleteMessage deletes the message at ts.
func (w *WebAPI) DeleteMessage(ctx context.Context, channel, ts string) error {
	return w.exec(ctx, endpoint.ChatDelete, httpclient.Params{
		"channel": httpclient.String(channel),
		"ts":      httpclient.String(ts),
	})
}

func (w *WebAPI) post(ctx context.Context, ep endpoint.Endpoint, params httpclient.Params) (*PostedMessage, error) {
	env, err := w.call(ctx, ep, params)
	if err != nil {
		return nil, err
	}
	ts, err := stringField(env, "ts")
	if err != nil {
		return nil, err
	}
	channel, err := stringField(env, "channel")
	if err != nil {
		return nil, err
	}
	return &PostedMessage{Channel: channel, Timestamp: ts}, nil
}

func (o MessageOptions) params() (httpclient.Params, error) {
	attachments, err := encodeAttachments(o.Attachments)
	if err != nil {
		return nil, err
	}
	return httpclient.Params{
		"as_user":      httpclient.OptBool(o.AsUser),
		"parse":        httpclient.NonEmpty(string(o.Parse)),
		"link_names":   httpclient.OptBool(o.LinkNames),
		"unfurl_links": httpclient.OptBool(o.UnfurlLinks),
		"unfurl_media": httpclient.OptBool(o.UnfurlMedia),
		"username":     httpclient.NonEmpty(o.Username),
		"icon_url":     httpclient.NonEmpty(o.IconURL),
		"icon_emoji":   httpclient.NonEmpty(o.IconEmoji),
		"attachments":  attachments,
	}, nil
}

// encodeAttachments renders attachments as the JSON array string Slack
// expects in a query parameter.
func encodeAttachments(attachments []model.Attachment) (httpclient.Value, error) {
	if len(attachments) == 0 {
		return httpclient.Absent(), nil
	}
	data, err := json.Marshal(attachments)
	if err != nil {
		return httpclient.Absent(), errors.ClientNetwork(err)
	}
	return httpclient.String(string(data)), nil
}
