package model

// Channel is a public channel, private group, direct message or multi-party
// direct message. Which flags are set depends on the endpoint that
// returned it.
type Channel struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name,omitempty"`
	Created            int64    `json:"created,omitempty"`
	Creator            string   `json:"creator,omitempty"`
	User               string   `json:"user,omitempty"`
	IsChannel          bool     `json:"is_channel,omitempty"`
	IsGroup            bool     `json:"is_group,omitempty"`
	IsIM               bool     `json:"is_im,omitempty"`
	IsMPIM             bool     `json:"is_mpim,omitempty"`
	IsPrivate          bool     `json:"is_private,omitempty"`
	IsArchived         bool     `json:"is_archived,omitempty"`
	IsGeneral          bool     `json:"is_general,omitempty"`
	IsMember           bool     `json:"is_member,omitempty"`
	IsOpen             bool     `json:"is_open,omitempty"`
	IsStarred          bool     `json:"is_starred,omitempty"`
	Members            []string `json:"members,omitempty"`
	Topic              *Topic   `json:"topic,omitempty"`
	Purpose            *Topic   `json:"purpose,omitempty"`
	LastRead           string   `json:"last_read,omitempty"`
	Latest             *Message `json:"latest,omitempty"`
	UnreadCount        int      `json:"unread_count,omitempty"`
	UnreadCountDisplay int      `json:"unread_count_display,omitempty"`
	NumMembers         int      `json:"num_members,omitempty"`
}

// Topic is a channel topic or purpose.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator,omitempty"`
	LastSet int64  `json:"last_set,omitempty"`
}

// History is one page of channel messages.
type History struct {
	Latest             string    `json:"latest,omitempty"`
	Messages           []Message `json:"messages"`
	HasMore            bool      `json:"has_more"`
	UnreadCountDisplay int       `json:"unread_count_display,omitempty"`
}
