package model

import (
	"encoding/json"
	"testing"
)

func TestUser_Decode(t *testing.T) {
	raw := `{
		"id": "U123",
		"name": "ada",
		"real_name": "Ada Lovelace",
		"is_admin": true,
		"tz_offset": -18000,
		"profile": {"display_name": "", "real_name": "Ada L.", "email": "ada@example.com"},
		"unknown_field": [1, 2, 3]
	}`
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "U123" || u.Name != "ada" || !u.IsAdmin || u.TZOffset != -18000 {
		t.Errorf("unexpected user: %+v", u)
	}
	if u.Profile == nil || u.Profile.Email != "ada@example.com" {
		t.Fatalf("profile not decoded: %+v", u.Profile)
	}
	if got := u.DisplayName(); got != "Ada L." {
		t.Errorf("DisplayName() = %q, want %q", got, "Ada L.")
	}
}

func TestUser_DisplayNameFallback(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"display name", User{Name: "h", Profile: &UserProfile{DisplayName: "d", RealName: "r"}}, "d"},
		{"profile real name", User{Name: "h", Profile: &UserProfile{RealName: "r"}}, "r"},
		{"user real name", User{Name: "h", RealName: "rr"}, "rr"},
		{"handle", User{Name: "h"}, "h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHistory_Decode(t *testing.T) {
	raw := `{
		"latest": "1500000000.000200",
		"has_more": true,
		"messages": [
			{"type": "message", "user": "U1", "text": "hi", "ts": "1500000000.000100",
			 "reactions": [{"name": "wave", "count": 2, "users": ["U2", "U3"]}]},
			{"type": "message", "subtype": "bot_message", "bot_id": "B1", "ts": "1500000000.000200",
			 "attachments": [{"fallback": "f", "fields": [{"title": "t", "value": "v", "short": true}]}]}
		]
	}`
	var h History
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !h.HasMore || len(h.Messages) != 2 {
		t.Fatalf("unexpected history: %+v", h)
	}
	if got := h.Messages[0].Reactions[0]; got.Name != "wave" || got.Count != 2 || len(got.Users) != 2 {
		t.Errorf("unexpected reaction: %+v", got)
	}
	att := h.Messages[1].Attachments
	if len(att) != 1 || len(att[0].Fields) != 1 || !att[0].Fields[0].Short {
		t.Errorf("unexpected attachments: %+v", att)
	}
}

func TestAttachment_EncodeOmitsEmpty(t *testing.T) {
	data, err := json.Marshal([]Attachment{{Text: "hello", Color: "good"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `[{"color":"good","text":"hello"}]`; got != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}
}

func TestFile_MergeComments(t *testing.T) {
	f := &File{ID: "F1"}
	f.MergeComments([]Comment{
		{ID: "Fc1", Comment: "first"},
		{ID: "Fc2", Comment: "second"},
		{Comment: "no id"},
	})
	f.MergeComments([]Comment{{ID: "Fc1", Comment: "edited"}})

	if len(f.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(f.Comments))
	}
	if got := f.Comments["Fc1"].Comment; got != "edited" {
		t.Errorf("Fc1 = %q, want %q", got, "edited")
	}
	if got := f.Comments["Fc2"].Comment; got != "second" {
		t.Errorf("Fc2 = %q, want %q", got, "second")
	}
}

func TestFile_CommentsNotSerialized(t *testing.T) {
	f := File{ID: "F1", Comments: map[string]Comment{"Fc1": {ID: "Fc1"}}}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"id":"F1"}`; got != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}
}

func TestItem_Reactions(t *testing.T) {
	r := []Reaction{{Name: "tada", Count: 1}}
	tests := []struct {
		name string
		item Item
		want int
	}{
		{"message", Item{Type: "message", Message: &Message{Reactions: r}}, 1},
		{"file", Item{Type: "file", File: &File{Reactions: r}}, 1},
		{"comment", Item{Type: "file_comment", Comment: &Comment{Reactions: r}}, 1},
		{"empty", Item{Type: "channel"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.item.Reactions()); got != tt.want {
				t.Errorf("len(Reactions()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDoNotDisturbStatus_Decode(t *testing.T) {
	raw := `{"dnd_enabled": true, "next_dnd_start_ts": 1450416600, "next_dnd_end_ts": 1450452600, "snooze_enabled": false}`
	var s DoNotDisturbStatus
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !s.Enabled || s.NextStartTimestamp != 1450416600 || s.NextEndTimestamp != 1450452600 {
		t.Errorf("unexpected status: %+v", s)
	}
}

func TestChannel_Decode(t *testing.T) {
	raw := `{"id": "C1", "name": "general", "is_channel": true, "is_general": true,
		"members": ["U1", "U2"], "topic": {"value": "news", "creator": "U1", "last_set": 10},
		"latest": {"text": "hey", "ts": "1.2"}}`
	var c Channel
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Topic == nil || c.Topic.Value != "news" {
		t.Errorf("topic not decoded: %+v", c.Topic)
	}
	if c.Latest == nil || c.Latest.Text != "hey" {
		t.Errorf("latest not decoded: %+v", c.Latest)
	}
	if len(c.Members) != 2 || !c.IsGeneral {
		t.Errorf("unexpected channel: %+v", c)
	}
}
