package model

// File is an uploaded file.
type File struct {
	ID                 string     `json:"id"`
	Created            int64      `json:"created,omitempty"`
	Timestamp          int64      `json:"timestamp,omitempty"`
	Name               string     `json:"name,omitempty"`
	Title              string     `json:"title,omitempty"`
	Mimetype           string     `json:"mimetype,omitempty"`
	Filetype           string     `json:"filetype,omitempty"`
	PrettyType         string     `json:"pretty_type,omitempty"`
	User               string     `json:"user,omitempty"`
	Mode               string     `json:"mode,omitempty"`
	Editable           bool       `json:"editable,omitempty"`
	IsExternal         bool       `json:"is_external,omitempty"`
	ExternalType       string     `json:"external_type,omitempty"`
	Size               int        `json:"size,omitempty"`
	URLPrivate         string     `json:"url_private,omitempty"`
	URLPrivateDownload string     `json:"url_private_download,omitempty"`
	Permalink          string     `json:"permalink,omitempty"`
	PermalinkPublic    string     `json:"permalink_public,omitempty"`
	Preview            string     `json:"preview,omitempty"`
	IsPublic           bool       `json:"is_public,omitempty"`
	PublicURLShared    bool       `json:"public_url_shared,omitempty"`
	Channels           []string   `json:"channels,omitempty"`
	Groups             []string   `json:"groups,omitempty"`
	IMs                []string   `json:"ims,omitempty"`
	InitialComment     *Comment   `json:"initial_comment,omitempty"`
	CommentsCount      int        `json:"comments_count,omitempty"`
	NumStars           int        `json:"num_stars,omitempty"`
	IsStarred          bool       `json:"is_starred,omitempty"`
	PinnedTo           []string   `json:"pinned_to,omitempty"`
	Reactions          []Reaction `json:"reactions,omitempty"`

	// Comments holds comments fetched alongside the file, keyed by id.
	Comments map[string]Comment `json:"-"`
}

// Comment is a comment on a file.
type Comment struct {
	ID        string     `json:"id"`
	Created   int64      `json:"created,omitempty"`
	Timestamp int64      `json:"timestamp,omitempty"`
	User      string     `json:"user,omitempty"`
	Comment   string     `json:"comment"`
	IsIntro   bool       `json:"is_intro,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
}

// MergeComments adds comments to f.Comments keyed by id. Comments without
// an id are dropped; a later comment replaces an earlier one with the same
// id.
func (f *File) MergeComments(comments []Comment) {
	if f.Comments == nil {
		f.Comments = make(map[string]Comment, len(comments))
	}
	for _, c := range comments {
		if c.ID == "" {
			continue
		}
		f.Comments[c.ID] = c
	}
}
