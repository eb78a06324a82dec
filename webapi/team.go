package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/model"
)

// TeamInfo returns the workspace of the bound token.
func (w *WebAPI) TeamInfo(ctx context.Context) (*model.Team, error) {
	env, err := w.call(ctx, endpoint.TeamInfo, nil)
	if err != nil {
		return nil, err
	}
	team, err := decode[model.Team](env, "team")
	if err != nil {
		return nil, err
	}
	return &team, nil
}
