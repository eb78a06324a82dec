package webapi

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/slackweb/errors"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/slacktest"
)

func newTestClient(t *testing.T) (*httpclient.Client, *slacktest.Server) {
	t.Helper()
	srv := slacktest.NewServer()
	t.Cleanup(srv.Close)
	c, err := httpclient.New(httpclient.Config{BaseURL: srv.BaseURL()})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}
	return c, srv
}

func TestRTMStart_SendsFlags(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Reply("rtm.start", gin.H{"url": "wss://example.com/websocket", "self": gin.H{"id": "U1"}})

	noUnreads := true
	env, err := RTMStart(context.Background(), c, "xoxb-1", RTMStartOptions{PresenceSub: true, NoUnreads: &noUnreads})
	if err != nil {
		t.Fatalf("RTMStart: %v", err)
	}
	if u, err := RTMURL(env); err != nil || u != "wss://example.com/websocket" {
		t.Errorf("RTMURL = %q, %v", u, err)
	}

	req := lastRequest(t, srv)
	want := map[string]string{
		"token":                "xoxb-1",
		"batch_presence_aware": "false",
		"no_latest":            "false",
		"presence_sub":         "true",
		"no_unreads":           "true",
	}
	for k, v := range want {
		if got := req.Param(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	for _, absent := range []string{"mpim_aware", "simple_latest"} {
		if _, ok := req.Query[absent]; ok {
			t.Errorf("%s should not be sent", absent)
		}
	}
}

func TestRTMConnect_Method(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Reply("rtm.connect", gin.H{"url": "wss://example.com/ws"})
	w := NewWithClient("xoxb-2", c)

	if _, err := w.RTMConnect(context.Background(), RTMConnectOptions{BatchPresenceAware: true}); err != nil {
		t.Fatalf("RTMConnect: %v", err)
	}
	req := lastRequest(t, srv)
	if req.Token() != "xoxb-2" || req.Param("batch_presence_aware") != "true" {
		t.Errorf("query = %v", req.Query)
	}
}

func TestRTMURL_Missing(t *testing.T) {
	_, err := RTMURL(httpclient.Envelope{"ok": true})
	if !errors.HasCode(err, errors.ErrCodeClientJSON) {
		t.Fatalf("expected client_json_error, got %v", err)
	}
}

func TestOAuthAccess(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Reply("oauth.access", gin.H{"access_token": "xoxp-new", "scope": "read"})

	env := OAuthAccess(c, "id", "secret", "code123", "")
	if env == nil {
		t.Fatal("expected an envelope")
	}
	if tok, _ := env.String("access_token"); tok != "xoxp-new" {
		t.Errorf("access_token = %q", tok)
	}
	req := lastRequest(t, srv)
	if req.Param("client_id") != "id" || req.Param("code") != "code123" {
		t.Errorf("query = %v", req.Query)
	}
	if _, ok := req.Query["redirect_uri"]; ok {
		t.Error("empty redirect_uri should not be sent")
	}
	if _, ok := req.Query["token"]; ok {
		t.Error("oauth.access must not send a token")
	}
}

func TestOAuthAccess_FailureIsNil(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Fail("oauth.access", "invalid_code")

	if env := OAuthAccess(c, "id", "secret", "bad", "https://example.com/cb"); env != nil {
		t.Errorf("expected nil envelope, got %v", env)
	}
}

func TestOAuthRevoke(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Reply("auth.revoke", gin.H{"revoked": false})
	w := NewWithClient("xoxp-old", c)

	test := true
	if err := w.RevokeToken(context.Background(), &test); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	req := lastRequest(t, srv)
	if req.Token() != "xoxp-old" || req.Param("test") != "true" {
		t.Errorf("query = %v", req.Query)
	}
}

func TestAPITest_EchoesArgs(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle("api.test", func(ctx *gin.Context, req slacktest.Request) {
		ctx.JSON(200, gin.H{"ok": true, "args": gin.H{"foo": req.Param("foo")}})
	})
	w := NewWithClient("unused", c)

	env, err := w.APITest(context.Background(), map[string]string{"foo": "bar"})
	if err != nil {
		t.Fatalf("APITest: %v", err)
	}
	args, _ := env.Object("args")
	if v, _ := args.String("foo"); v != "bar" {
		t.Errorf("args = %v", args)
	}
}

func TestOAuthRevoke_TestFlagOmittedWhenNil(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Reply("auth.revoke", gin.H{"revoked": true})

	if err := OAuthRevoke(context.Background(), c, "xoxp-old", nil); err != nil {
		t.Fatalf("OAuthRevoke: %v", err)
	}
	req := lastRequest(t, srv)
	if _, ok := req.Query["test"]; ok {
		t.Errorf("test should not be sent, query = %v", req.Query)
	}
	if req.Token() != "xoxp-old" {
		t.Errorf("token = %q", req.Token())
	}
}
