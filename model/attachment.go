package model

// Attachment is a legacy secondary message attachment.
type Attachment struct {
	Fallback   string             `json:"fallback,omitempty"`
	CallbackID string             `json:"callback_id,omitempty"`
	Color      string             `json:"color,omitempty"`
	Pretext    string             `json:"pretext,omitempty"`
	AuthorName string             `json:"author_name,omitempty"`
	AuthorLink string             `json:"author_link,omitempty"`
	AuthorIcon string             `json:"author_icon,omitempty"`
	Title      string             `json:"title,omitempty"`
	TitleLink  string             `json:"title_link,omitempty"`
	Text       string             `json:"text,omitempty"`
	Fields     []AttachmentField  `json:"fields,omitempty"`
	Actions    []AttachmentAction `json:"actions,omitempty"`
	ImageURL   string             `json:"image_url,omitempty"`
	ThumbURL   string             `json:"thumb_url,omitempty"`
	Footer     string             `json:"footer,omitempty"`
	FooterIcon string             `json:"footer_icon,omitempty"`
	TS         int64              `json:"ts,omitempty"`
	MarkdownIn []string           `json:"mrkdwn_in,omitempty"`
}

// AttachmentField is a short label/value table row.
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short,omitempty"`
}

// AttachmentAction is an interactive button or menu.
type AttachmentAction struct {
	Name    string              `json:"name"`
	Text    string              `json:"text"`
	Type    string              `json:"type"`
	Value   string              `json:"value,omitempty"`
	Style   string              `json:"style,omitempty"`
	URL     string              `json:"url,omitempty"`
	Confirm *ActionConfirmation `json:"confirm,omitempty"`
}

// ActionConfirmation is the dialog shown before an action runs.
type ActionConfirmation struct {
	Title       string `json:"title,omitempty"`
	Text        string `json:"text"`
	OKText      string `json:"ok_text,omitempty"`
	DismissText string `json:"dismiss_text,omitempty"`
}
