package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// HistoryOptions bounds a history request. Latest defaults to now, Oldest
// to "0" and Count to 100.
type HistoryOptions struct {
	Latest    string
	Oldest    string
	Inclusive bool
	Count     int
	Unreads   bool
}

// ListOptions filters channel, group, im and mpim lists.
type ListOptions struct {
	ExcludeArchived bool
	ExcludeMembers  bool
}

// family is the set of methods one conversation type exposes. Zero
// endpoints are unsupported by that type.
type family struct {
	history endpoint.Endpoint
	info    endpoint.Endpoint
	list    endpoint.Endpoint
	mark    endpoint.Endpoint
	// infoKey holds the object in info responses; listKey the array in list
	// responses.
	infoKey string
	listKey string
}

var (
	channels = family{
		history: endpoint.ChannelsHistory,
		info:    endpoint.ChannelsInfo,
		list:    endpoint.ChannelsList,
		mark:    endpoint.ChannelsMark,
		infoKey: "channel",
		listKey: "channels",
	}
	groups = family{
		history: endpoint.GroupsHistory,
		info:    endpoint.GroupsInfo,
		list:    endpoint.GroupsList,
		mark:    endpoint.GroupsMark,
		infoKey: "group",
		listKey: "groups",
	}
	ims = family{
		history: endpoint.IMHistory,
		list:    endpoint.IMList,
		mark:    endpoint.IMMark,
		listKey: "ims",
	}
	// mpim.list answers with a "groups" array.
	mpims = family{
		history: endpoint.MPIMHistory,
		list:    endpoint.MPIMList,
		mark:    endpoint.MPIMMark,
		listKey: "groups",
	}
)

func (w *WebAPI) history(ctx context.Context, f family, id string, opts HistoryOptions) (*model.History, error) {
	latest := opts.Latest
	if latest == "" {
		latest = timestamp(w.now())
	}
	oldest := opts.Oldest
	if oldest == "" {
		oldest = "0"
	}
	env, err := w.call(ctx, f.history, httpclient.Params{
		"channel":   httpclient.String(id),
		"latest":    httpclient.String(latest),
		"oldest":    httpclient.String(oldest),
		"inclusive": httpclient.Bool(opts.Inclusive),
		"count":     positive(opts.Count, 100),
		"unreads":   httpclient.Bool(opts.Unreads),
	})
	if err != nil {
		return nil, err
	}
	h, err := decode[model.History](env, "")
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (w *WebAPI) info(ctx context.Context, f family, id string) (*model.Channel, error) {
	env, err := w.call(ctx, f.info, httpclient.Params{"channel": httpclient.String(id)})
	if err != nil {
		return nil, err
	}
	ch, err := decode[model.Channel](env, f.infoKey)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (w *WebAPI) list(ctx context.Context, f family, opts ListOptions) ([]model.Channel, error) {
	env, err := w.call(ctx, f.list, httpclient.Params{
		"exclude_archived": httpclient.Bool(opts.ExcludeArchived),
		"exclude_members":  httpclient.Bool(opts.ExcludeMembers),
	})
	if err != nil {
		return nil, err
	}
	return decode[[]model.Channel](env, f.listKey)
}

func (w *WebAPI) mark(ctx context.Context, f family, id, ts string) error {
	return w.exec(ctx, f.mark, httpclient.Params{
		"channel": httpclient.String(id),
		"ts":      httpclient.String(ts),
	})
}

// setText sets a purpose or topic and returns the stored value.
func (w *WebAPI) setText(ctx context.Context, ep endpoint.Endpoint, id, key, value string) (string, error) {
	env, err := w.call(ctx, ep, httpclient.Params{
		"channel": httpclient.String(id),
		key:       httpclient.String(value),
	})
	if err != nil {
		return "", err
	}
	return stringField(env, key)
}

func (w *WebAPI) closeConversation(ctx context.Context, ep endpoint.Endpoint, id string) error {
	return w.exec(ctx, ep, httpclient.Params{"channel": httpclient.String(id)})
}
