package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kbukum/slackweb/errors"
)

// Classify maps a raw HTTP outcome to an Envelope or exactly one error.
// transportErr is the error from sending the request, body the response
// payload and status the HTTP status code.
//
//   - a transport error, nil body or zero status is client_network_error
//   - HTTP 429 is too_many_requests whatever the body holds
//   - a body that is not a JSON object is client_json_error
//   - HTTP 200 with "ok": true is success
//   - HTTP 200 otherwise carries the server code from "error"
//   - any other status is client_network_error
func Classify(body []byte, status int, transportErr error) (Envelope, error) {
	if transportErr != nil {
		return nil, errors.ClientNetwork(transportErr)
	}
	if body == nil || status == 0 {
		return nil, errors.ClientNetwork(fmt.Errorf("no response received"))
	}
	if status == http.StatusTooManyRequests {
		return nil, errors.TooManyRequests(0)
	}

	env, err := decodeObject(body)
	if err != nil {
		return nil, errors.ClientJSON(status, err)
	}

	if status != http.StatusOK {
		return nil, errors.UnexpectedStatus(status)
	}
	if ok, _ := env["ok"].(bool); ok {
		return env, nil
	}
	raw, _ := env["error"].(string)
	return nil, errors.Server(raw)
}

// decodeObject parses body as a single top-level JSON object. "null",
// arrays and scalars are rejected.
func decodeObject(body []byte) (Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("top-level value is not an object")
	}
	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, fmt.Errorf("top-level value is not an object")
	}
	return env, nil
}
