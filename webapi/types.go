package webapi

import (
	"github.com/kbukum/slackweb/httpclient"
)

// ParseMode controls how Slack treats markup in message text.
type ParseMode string

const (
	ParseFull ParseMode = "full"
	ParseNone ParseMode = "none"
)

// Presence is a user presence setting.
type Presence string

const (
	PresenceAuto   Presence = "auto"
	PresenceAway   Presence = "away"
	PresenceActive Presence = "active"
)

// ConversationType filters conversations.list.
type ConversationType string

const (
	PublicChannel  ConversationType = "public_channel"
	PrivateChannel ConversationType = "private_channel"
	MPIM           ConversationType = "mpim"
	IM             ConversationType = "im"
)

// ItemRef points at a message, file or file comment for pins, stars and
// reactions. Set Channel and Timestamp for a message, File for a file, or
// FileComment for a comment.
type ItemRef struct {
	Channel     string
	Timestamp   string
	File        string
	FileComment string
}

func (r ItemRef) params() httpclient.Params {
	return httpclient.Params{
		"channel":      httpclient.NonEmpty(r.Channel),
		"timestamp":    httpclient.NonEmpty(r.Timestamp),
		"file":         httpclient.NonEmpty(r.File),
		"file_comment": httpclient.NonEmpty(r.FileComment),
	}
}

// PageOptions selects a page of a paged list. Zero values use the method
// defaults.
type PageOptions struct {
	Count int
	Page  int
}
