package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// DNDInfo returns the do-not-disturb status of user, or of the caller when
// user is empty.
func (w *WebAPI) DNDInfo(ctx context.Context, user string) (*model.DoNotDisturbStatus, error) {
	env, err := w.call(ctx, endpoint.DNDInfo, httpclient.Params{"user": httpclient.NonEmpty(user)})
	if err != nil {
		return nil, err
	}
	status, err := decode[model.DoNotDisturbStatus](env, "")
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// DNDTeamInfo returns the do-not-disturb status of each of users, keyed by
// user id.
func (w *WebAPI) DNDTeamInfo(ctx context.Context, users []string) (map[string]model.DoNotDisturbStatus, error) {
	env, err := w.call(ctx, endpoint.DNDTeamInfo, httpclient.Params{"users": joined(users)})
	if err != nil {
		return nil, err
	}
	return decode[map[string]model.DoNotDisturbStatus](env, "users")
}
