package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
)

// AuthenticationTest checks the token and returns who it belongs to.
func (w *WebAPI) AuthenticationTest(ctx context.Context) (userID, teamID string, err error) {
	env, err := w.call(ctx, endpoint.AuthTest, nil)
	if err != nil {
		return "", "", err
	}
	if userID, err = stringField(env, "user_id"); err != nil {
		return "", "", err
	}
	if teamID, err = stringField(env, "team_id"); err != nil {
		return "", "", err
	}
	return userID, teamID, nil
}

// APITest calls api.test, which echoes its arguments.
func (w *WebAPI) APITest(ctx context.Context, args map[string]string) (httpclient.Envelope, error) {
	params := httpclient.Params{}
	for k, v := range args {
		params[k] = httpclient.String(v)
	}
	return w.client.Do(ctx, endpoint.APITest, params)
}

// RevokeToken revokes the bound token. With test set to true Slack only
// reports whether it would have been revoked. A nil test is not sent.
func (w *WebAPI) RevokeToken(ctx context.Context, test *bool) error {
	return OAuthRevoke(ctx, w.client, w.token, test)
}

// OAuthAccess exchanges an OAuth code for a token. It blocks until the
// exchange completes and returns nil on any failure. A nil client uses
// httpclient.Default.
func OAuthAccess(c *httpclient.Client, clientID, clientSecret, code, redirectURI string) httpclient.Envelope {
	if c == nil {
		c = httpclient.Default()
	}
	return c.DoSync(endpoint.OAuthAccess, httpclient.Params{
		"client_id":     httpclient.String(clientID),
		"client_secret": httpclient.String(clientSecret),
		"code":          httpclient.String(code),
		"redirect_uri":  httpclient.NonEmpty(redirectURI),
	})
}

// OAuthRevoke revokes token. A nil test is not sent. A nil client uses
// httpclient.Default.
func OAuthRevoke(ctx context.Context, c *httpclient.Client, token string, test *bool) error {
	_, err := callWithToken(ctx, c, token, endpoint.AuthRevoke, httpclient.Params{
		"test": httpclient.OptBool(test),
	})
	return err
}
