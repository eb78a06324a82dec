package model

// Message is a channel message or one of its subtypes.
type Message struct {
	Type        string       `json:"type,omitempty"`
	Subtype     string       `json:"subtype,omitempty"`
	TS          string       `json:"ts,omitempty"`
	ThreadTS    string       `json:"thread_ts,omitempty"`
	Channel     string       `json:"channel,omitempty"`
	User        string       `json:"user,omitempty"`
	BotID       string       `json:"bot_id,omitempty"`
	Username    string       `json:"username,omitempty"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty"`
	ReplyCount  int          `json:"reply_count,omitempty"`
	IsStarred   bool         `json:"is_starred,omitempty"`
	PinnedTo    []string     `json:"pinned_to,omitempty"`
	Edited      *Edited      `json:"edited,omitempty"`
	File        *File        `json:"file,omitempty"`
	Comment     *Comment     `json:"comment,omitempty"`
	Permalink   string       `json:"permalink,omitempty"`
}

// Edited records the last edit of a message.
type Edited struct {
	User string `json:"user"`
	TS   string `json:"ts"`
}

// Reaction is an emoji reaction and who added it.
type Reaction struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Users []string `json:"users,omitempty"`
}

// Item is a pinned, starred or reacted-to object.
type Item struct {
	Type      string   `json:"type"`
	Channel   string   `json:"channel,omitempty"`
	Created   int64    `json:"created,omitempty"`
	CreatedBy string   `json:"created_by,omitempty"`
	Message   *Message `json:"message,omitempty"`
	File      *File    `json:"file,omitempty"`
	Comment   *Comment `json:"comment,omitempty"`
}

// Reactions returns the reactions of whichever object the item wraps.
func (i *Item) Reactions() []Reaction {
	switch {
	case i.Message != nil:
		return i.Message.Reactions
	case i.Comment != nil:
		return i.Comment.Reactions
	case i.File != nil:
		return i.File.Reactions
	}
	return nil
}
