package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
)

// AddStar stars ref for the caller.
func (w *WebAPI) AddStar(ctx context.Context, ref ItemRef) error {
	return w.exec(ctx, endpoint.StarsAdd, ref.params())
}

// RemoveStar removes the caller's star from ref.
func (w *WebAPI) RemoveStar(ctx context.Context, ref ItemRef) error {
	return w.exec(ctx, endpoint.StarsRemove, ref.params())
}
