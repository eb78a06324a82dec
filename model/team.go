package model

// Team is workspace metadata from team.info.
type Team struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Domain      string         `json:"domain,omitempty"`
	EmailDomain string         `json:"email_domain,omitempty"`
	Icon        map[string]any `json:"icon,omitempty"`
}

// DoNotDisturbStatus is a user's do-not-disturb state. Times are Unix
// seconds.
type DoNotDisturbStatus struct {
	Enabled            bool  `json:"dnd_enabled"`
	NextStartTimestamp int64 `json:"next_dnd_start_ts,omitempty"`
	NextEndTimestamp   int64 `json:"next_dnd_end_ts,omitempty"`
	SnoozeEnabled      bool  `json:"snooze_enabled,omitempty"`
	SnoozeEndtime      int64 `json:"snooze_endtime,omitempty"`
	SnoozeRemaining    int64 `json:"snooze_remaining,omitempty"`
}

// ResponseMetadata carries the pagination cursor of list endpoints.
type ResponseMetadata struct {
	NextCursor string `json:"next_cursor,omitempty"`
}
