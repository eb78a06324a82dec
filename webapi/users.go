package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// UserPresence returns "active" or "away" for user.
func (w *WebAPI) UserPresence(ctx context.Context, user string) (Presence, error) {
	env, err := w.call(ctx, endpoint.UsersGetPresence, httpclient.Params{"user": httpclient.String(user)})
	if err != nil {
		return "", err
	}
	p, err := stringField(env, "presence")
	return Presence(p), err
}

// UserInfo returns a user.
func (w *WebAPI) UserInfo(ctx context.Context, user string) (*model.User, error) {
	env, err := w.call(ctx, endpoint.UsersInfo, httpclient.Params{"user": httpclient.String(user)})
	if err != nil {
		return nil, err
	}
	u, err := decode[model.User](env, "user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UsersList returns every member of the workspace. With presence set each
// user carries its current presence.
func (w *WebAPI) UsersList(ctx context.Context, presence bool) ([]model.User, error) {
	env, err := w.call(ctx, endpoint.UsersList, httpclient.Params{"presence": httpclient.Bool(presence)})
	if err != nil {
		return nil, err
	}
	return decode[[]model.User](env, "members")
}

// SetActive marks the caller as active.
func (w *WebAPI) SetActive(ctx context.Context) error {
	return w.exec(ctx, endpoint.UsersSetActive, nil)
}

// SetPresence sets the caller's presence to PresenceAuto or PresenceAway.
func (w *WebAPI) SetPresence(ctx context.Context, presence Presence) error {
	return w.exec(ctx, endpoint.UsersSetPresence, httpclient.Params{"presence": httpclient.String(string(presence))})
}
