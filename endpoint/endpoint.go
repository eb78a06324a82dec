// Package endpoint is the catalog of Slack Web API methods the client can
// call. Each Endpoint maps to a fixed path segment appended to the API base
// URL, the HTTP method used to call it and the rate-limit tier Slack assigns
// to it.
package endpoint

import (
	"net/http"
	"sort"
)

// Endpoint names a remote method. Its value is the path segment.
type Endpoint string

// Tier is the Slack rate-limit tier of a method.
type Tier int

// Rate tiers, as published by Slack. TierSpecial methods have per-method rules.
const (
	TierSpecial Tier = iota
	Tier1
	Tier2
	Tier3
	Tier4
)

const (
	APITest             Endpoint = "api.test"
	AuthRevoke          Endpoint = "auth.revoke"
	AuthTest            Endpoint = "auth.test"
	ChannelsHistory     Endpoint = "channels.history"
	ChannelsInfo        Endpoint = "channels.info"
	ChannelsList        Endpoint = "channels.list"
	ChannelsMark        Endpoint = "channels.mark"
	ChannelsCreate      Endpoint = "channels.create"
	ChannelsInvite      Endpoint = "channels.invite"
	ChannelsSetPurpose  Endpoint = "channels.setPurpose"
	ChannelsSetTopic    Endpoint = "channels.setTopic"
	ChatDelete          Endpoint = "chat.delete"
	ChatPostMessage     Endpoint = "chat.postMessage"
	ChatMeMessage       Endpoint = "chat.meMessage"
	ChatUpdate          Endpoint = "chat.update"
	ConversationsList   Endpoint = "conversations.list"
	DNDInfo             Endpoint = "dnd.info"
	DNDTeamInfo         Endpoint = "dnd.teamInfo"
	EmojiList           Endpoint = "emoji.list"
	FilesCommentsAdd    Endpoint = "files.comments.add"
	FilesCommentsEdit   Endpoint = "files.comments.edit"
	FilesCommentsDelete Endpoint = "files.comments.delete"
	FilesDelete         Endpoint = "files.delete"
	FilesInfo           Endpoint = "files.info"
	FilesUpload         Endpoint = "files.upload"
	GroupsClose         Endpoint = "groups.close"
	GroupsHistory       Endpoint = "groups.history"
	GroupsInfo          Endpoint = "groups.info"
	GroupsList          Endpoint = "groups.list"
	GroupsMark          Endpoint = "groups.mark"
	GroupsOpen          Endpoint = "groups.open"
	GroupsSetPurpose    Endpoint = "groups.setPurpose"
	GroupsSetTopic      Endpoint = "groups.setTopic"
	IMClose             Endpoint = "im.close"
	IMHistory           Endpoint = "im.history"
	IMList              Endpoint = "im.list"
	IMMark              Endpoint = "im.mark"
	IMOpen              Endpoint = "im.open"
	MPIMClose           Endpoint = "mpim.close"
	MPIMHistory         Endpoint = "mpim.history"
	MPIMList            Endpoint = "mpim.list"
	MPIMMark            Endpoint = "mpim.mark"
	MPIMOpen            Endpoint = "mpim.open"
	OAuthAccess         Endpoint = "oauth.access"
	PinsList            Endpoint = "pins.list"
	PinsAdd             Endpoint = "pins.add"
	PinsRemove          Endpoint = "pins.remove"
	ReactionsAdd        Endpoint = "reactions.add"
	ReactionsGet        Endpoint = "reactions.get"
	ReactionsList       Endpoint = "reactions.list"
	ReactionsRemove     Endpoint = "reactions.remove"
	RTMStart            Endpoint = "rtm.start"
	RTMConnect          Endpoint = "rtm.connect"
	StarsAdd            Endpoint = "stars.add"
	StarsRemove         Endpoint = "stars.remove"
	TeamInfo            Endpoint = "team.info"
	UsersGetPresence    Endpoint = "users.getPresence"
	UsersInfo           Endpoint = "users.info"
	UsersList           Endpoint = "users.list"
	UsersSetActive      Endpoint = "users.setActive"
	UsersSetPresence    Endpoint = "users.setPresence"
)

type methodInfo struct {
	method string
	tier   Tier
}

func read(t Tier) methodInfo { return methodInfo{method: http.MethodGet, tier: t} }
func write(t Tier) methodInfo { return methodInfo{method: http.MethodPost, tier: t} }

var catalog = map[Endpoint]methodInfo{
	APITest:             read(Tier4),
	AuthRevoke:          write(Tier3),
	AuthTest:            read(TierSpecial),
	ChannelsHistory:     read(Tier3),
	ChannelsInfo:        read(Tier3),
	ChannelsList:        read(Tier2),
	ChannelsMark:        write(Tier2),
	ChannelsCreate:      write(Tier2),
	ChannelsInvite:      write(Tier3),
	ChannelsSetPurpose:  write(Tier2),
	ChannelsSetTopic:    write(Tier2),
	ChatDelete:          write(Tier3),
	ChatPostMessage:     write(TierSpecial),
	ChatMeMessage:       write(TierSpecial),
	ChatUpdate:          write(Tier3),
	ConversationsList:   read(Tier2),
	DNDInfo:             read(Tier3),
	DNDTeamInfo:         read(Tier2),
	EmojiList:           read(Tier2),
	FilesCommentsAdd:    write(Tier2),
	FilesCommentsEdit:   write(Tier2),
	FilesCommentsDelete: write(Tier2),
	FilesDelete:         write(Tier3),
	FilesInfo:           read(Tier4),
	FilesUpload:         write(Tier2),
	GroupsClose:         write(Tier2),
	GroupsHistory:       read(Tier3),
	GroupsInfo:          read(Tier3),
	GroupsList:          read(Tier2),
	GroupsMark:          write(Tier3),
	GroupsOpen:          write(Tier3),
	GroupsSetPurpose:    write(Tier2),
	GroupsSetTopic:      write(Tier2),
	IMClose:             write(Tier2),
	IMHistory:           read(Tier3),
	IMList:              read(Tier2),
	IMMark:              write(Tier3),
	IMOpen:              write(Tier3),
	MPIMClose:           write(Tier2),
	MPIMHistory:         read(Tier3),
	MPIMList:            read(Tier2),
	MPIMMark:            write(Tier3),
	MPIMOpen:            write(Tier3),
	OAuthAccess:         read(Tier4),
	PinsList:            read(Tier2),
	PinsAdd:             write(Tier2),
	PinsRemove:          write(Tier2),
	ReactionsAdd:        write(Tier3),
	ReactionsGet:        read(Tier3),
	ReactionsList:       read(Tier2),
	ReactionsRemove:     write(Tier2),
	RTMStart:            read(Tier1),
	RTMConnect:          read(Tier1),
	StarsAdd:            write(Tier2),
	StarsRemove:         write(Tier2),
	TeamInfo:            read(Tier3),
	UsersGetPresence:    read(Tier3),
	UsersInfo:           read(Tier4),
	UsersList:           read(Tier2),
	UsersSetActive:      write(Tier3),
	UsersSetPresence:    write(Tier2),
}

// Path returns the path segment appended to the API base URL.
func (e Endpoint) Path() string { return string(e) }

// String implements fmt.Stringer.
func (e Endpoint) String() string { return string(e) }

// Method returns GET for reads and POST for mutations and uploads.
// Endpoints outside the catalog default to GET.
func (e Endpoint) Method() string {
	if s, ok := catalog[e]; ok {
		return s.method
	}
	return http.MethodGet
}

// Tier returns the rate-limit tier of the endpoint.
func (e Endpoint) Tier() Tier {
	return catalog[e].tier
}

// Valid reports whether e is part of the catalog.
func (e Endpoint) Valid() bool {
	_, ok := catalog[e]
	return ok
}

// Parse looks up an endpoint by its path segment.
func Parse(s string) (Endpoint, bool) {
	e := Endpoint(s)
	return e, e.Valid()
}

// All returns every catalogued endpoint sorted by path.
func All() []Endpoint {
	out := make([]Endpoint, 0, len(catalog))
	for e := range catalog {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns the tier name, e.g. "tier2".
func (t Tier) String() string {
	switch t {
	case Tier1:
		return "tier1"
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	case Tier4:
		return "tier4"
	default:
		return "special"
	}
}
