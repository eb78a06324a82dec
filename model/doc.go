// Package model holds the Slack objects returned by the Web API: users,
// channels, messages, files and their comments, reactions, starred or pinned
// items, do-not-disturb status and team metadata.
//
// Types decode straight from response JSON. Unknown fields are ignored and
// missing ones stay at their zero value.
package model
