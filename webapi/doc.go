// Package webapi is the typed, per-method face of the Slack Web API.
//
// A WebAPI binds a token to an httpclient.Client. Each method assembles the
// parameters of one Web API method, sends it through the client and decodes
// the result into model types. Optional arguments left at their zero value
// are not sent.
//
// Calls that run before a token exists (rtm.start, rtm.connect, oauth.access,
// oauth.revoke) are package functions taking the client explicitly.
package webapi
