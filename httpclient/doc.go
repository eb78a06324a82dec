// Package httpclient is the request/response pipeline of the Slack Web API
// client: parameters are encoded into a query string, a request is built for
// an endpoint, sent, and the response is classified into an Envelope or a
// single *errors.Error.
//
// The token travels as an ordinary "token" parameter; the client never
// inspects or logs it.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{})
//	if err != nil {
//	    return err
//	}
//
//	env, err := client.Do(ctx, endpoint.AuthTest, httpclient.Params{
//	    "token": httpclient.String(token),
//	})
//
// # Asynchronous Calls
//
//	res := <-client.Go(ctx, endpoint.ChannelsList, httpclient.Params{
//	    "token":            httpclient.String(token),
//	    "exclude_archived": httpclient.Bool(true),
//	})
//
// # Pacing
//
//	client, err := httpclient.New(httpclient.Config{
//	    RateLimiter: &resilience.TierLimiterConfig{Name: "slack"},
//	})
package httpclient
