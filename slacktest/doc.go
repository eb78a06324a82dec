// Package slacktest provides an in-process fake of the Slack Web API for
// tests.
//
// A Server answers POST and GET requests on /api/<method>. Methods are
// scripted with Reply, Fail, RateLimit or Handle; anything unscripted gets
// {"ok":false,"error":"unknown_method"}. Every request is recorded so tests
// can assert on the exact query and body that reached the wire.
//
//	srv := slacktest.NewServer()
//	defer srv.Close()
//	srv.Reply("auth.test", gin.H{"user_id": "U1", "team_id": "T1"})
//	client, _ := httpclient.New(httpclient.Config{BaseURL: srv.BaseURL()})
package slacktest
