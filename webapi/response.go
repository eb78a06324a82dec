package webapi

import (
	"context"
	"encoding/json"

	"github.com/kbukum/slackweb/errors"
)

// SendResponse posts payload as JSON to a response_url handed out by
// slash commands and interactive messages. A []byte or json.RawMessage
// payload is sent as is. The reply from Slack is not inspected.
func (w *WebAPI) SendResponse(ctx context.Context, responseURL string, payload any) error {
	var body []byte
	switch p := payload.(type) {
	case []byte:
		body = p
	case json.RawMessage:
		body = p
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.ClientNetwork(err)
		}
		body = data
	}
	return w.client.PostJSON(ctx, responseURL, body)
}
