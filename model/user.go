package model

// User is a workspace member.
type User struct {
	ID                string       `json:"id"`
	TeamID            string       `json:"team_id,omitempty"`
	Name              string       `json:"name"`
	Deleted           bool         `json:"deleted,omitempty"`
	Color             string       `json:"color,omitempty"`
	RealName          string       `json:"real_name,omitempty"`
	TZ                string       `json:"tz,omitempty"`
	TZLabel           string       `json:"tz_label,omitempty"`
	TZOffset          int          `json:"tz_offset,omitempty"`
	Profile           *UserProfile `json:"profile,omitempty"`
	IsAdmin           bool         `json:"is_admin,omitempty"`
	IsOwner           bool         `json:"is_owner,omitempty"`
	IsPrimaryOwner    bool         `json:"is_primary_owner,omitempty"`
	IsRestricted      bool         `json:"is_restricted,omitempty"`
	IsUltraRestricted bool         `json:"is_ultra_restricted,omitempty"`
	IsBot             bool         `json:"is_bot,omitempty"`
	Has2FA            bool         `json:"has_2fa,omitempty"`
	Presence          string       `json:"presence,omitempty"`
	Updated           int64        `json:"updated,omitempty"`
}

// UserProfile is the editable part of a user.
type UserProfile struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	RealName    string `json:"real_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Title       string `json:"title,omitempty"`
	StatusText  string `json:"status_text,omitempty"`
	StatusEmoji string `json:"status_emoji,omitempty"`
	BotID       string `json:"bot_id,omitempty"`
	Image24     string `json:"image_24,omitempty"`
	Image48     string `json:"image_48,omitempty"`
	Image72     string `json:"image_72,omitempty"`
	Image192    string `json:"image_192,omitempty"`
	Image512    string `json:"image_512,omitempty"`
}

// DisplayName returns the name a client would show: the profile display
// name, then the real name, then the handle.
func (u *User) DisplayName() string {
	if u.Profile != nil {
		if u.Profile.DisplayName != "" {
			return u.Profile.DisplayName
		}
		if u.Profile.RealName != "" {
			return u.Profile.RealName
		}
	}
	if u.RealName != "" {
		return u.RealName
	}
	return u.Name
}
