package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
)

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [key=value ...]",
		Short: "Call a Web API method and print the response",
		Long:  longCall,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := endpoint.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown method %q", args[0])
			}
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			if a.cfg.API.Token != "" {
				if _, set := params["token"]; !set {
					params["token"] = httpclient.String(a.cfg.API.Token)
				}
			}

			env, err := a.client.Do(cmd.Context(), ep, params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), env)
		},
	}
}

// parseParams turns key=value arguments into parameters. Values are sent as
// strings; true and false become booleans.
func parseParams(args []string) (httpclient.Params, error) {
	params := make(httpclient.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", arg)
		}
		switch value {
		case "true":
			params[key] = httpclient.Bool(true)
		case "false":
			params[key] = httpclient.Bool(false)
		default:
			params[key] = httpclient.String(value)
		}
	}
	return params, nil
}

var longCall = `
Call any method of the catalog with key=value arguments. The token from the
configuration is added unless a token argument is given.

Examples:
  slackapi call users.info user=U123
  slackapi call conversations.list types=public_channel,private_channel limit=50
`
