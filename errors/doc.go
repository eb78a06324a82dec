// Package errors defines the closed error taxonomy reported by Slack Web API
// calls.
//
// Every failed call surfaces exactly one *Error. Its Code is either one of the
// client-side kinds (network failure, undecodable body, HTTP 429, unknown) or a
// server-reported code looked up from a static table. Codes the table does not
// know collapse to ErrCodeUnknown.
//
//	env, err := client.Do(ctx, endpoint.UsersInfo, params)
//	switch errors.CodeOf(err) {
//	case errors.ErrCodeTooManyRequests:
//	    // back off
//	case errors.ErrCodeInvalidAuth, errors.ErrCodeNotAuthed:
//	    // surface to the user
//	}
package errors
