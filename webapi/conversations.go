package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/errors"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// ConversationsListOptions filters conversations.list. Cursor continues a
// previous page; Limit zero uses the server default.
type ConversationsListOptions struct {
	ExcludeArchived bool
	Cursor          string
	Limit           int
	Types           []ConversationType
}

// ConversationsList returns one page of conversations and the cursor of the
// next page, empty when there is none.
func (w *WebAPI) ConversationsList(ctx context.Context, opts ConversationsListOptions) ([]model.Channel, string, error) {
	types := make([]string, len(opts.Types))
	for i, t := range opts.Types {
		types[i] = string(t)
	}
	env, err := w.call(ctx, endpoint.ConversationsList, httpclient.Params{
		"exclude_archived": httpclient.Bool(opts.ExcludeArchived),
		"cursor":           httpclient.NonEmpty(opts.Cursor),
		"limit":            positive(opts.Limit, 0),
		"types":            joined(types),
	})
	if err != nil {
		return nil, "", err
	}
	convs, err := decode[[]model.Channel](env, "channels")
	if err != nil {
		return nil, "", err
	}
	var meta model.ResponseMetadata
	if _, err := env.Decode("response_metadata", &meta); err != nil {
		return nil, "", errors.ClientJSON(200, err)
	}
	return convs, meta.NextCursor, nil
}
