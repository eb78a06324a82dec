package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// ReactionsListOptions filters reactions.list. User defaults to the caller,
// Count to 100 and Page to 1.
type ReactionsListOptions struct {
	User string
	Full bool
	PageOptions
}

// AddReaction adds the emoji name to ref.
func (w *WebAPI) AddReaction(ctx context.Context, name string, ref ItemRef) error {
	params := ref.params()
	params["name"] = httpclient.String(name)
	return w.exec(ctx, endpoint.ReactionsAdd, params)
}

// RemoveReaction removes the emoji name from ref.
func (w *WebAPI) RemoveReaction(ctx context.Context, name string, ref ItemRef) error {
	params := ref.params()
	params["name"] = httpclient.String(name)
	return w.exec(ctx, endpoint.ReactionsRemove, params)
}

// ReactionsFor returns the reactions on ref. With full set every reacting
// user is listed.
func (w *WebAPI) ReactionsFor(ctx context.Context, ref ItemRef, full bool) ([]model.Reaction, error) {
	params := ref.params()
	params["full"] = httpclient.Bool(full)
	env, err := w.call(ctx, endpoint.ReactionsGet, params)
	if err != nil {
		return nil, err
	}
	item, err := decode[model.Item](env, "")
	if err != nil {
		return nil, err
	}
	return item.Reactions(), nil
}

// ReactionsList returns the items a user reacted to.
func (w *WebAPI) ReactionsList(ctx context.Context, opts ReactionsListOptions) ([]model.Item, error) {
	env, err := w.call(ctx, endpoint.ReactionsList, httpclient.Params{
		"user":  httpclient.NonEmpty(opts.User),
		"full":  httpclient.Bool(opts.Full),
		"count": positive(opts.Count, 100),
		"page":  positive(opts.Page, 1),
	})
	if err != nil {
		return nil, err
	}
	return decode[[]model.Item](env, "items")
}
