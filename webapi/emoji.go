package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
)

// EmojiList returns the custom emoji of the workspace, name to image URL or
// "alias:<name>".
func (w *WebAPI) EmojiList(ctx context.Context) (map[string]string, error) {
	env, err := w.call(ctx, endpoint.EmojiList, nil)
	if err != nil {
		return nil, err
	}
	return decode[map[string]string](env, "emoji")
}
