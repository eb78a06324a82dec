// Package config loads application configuration for programs built on the
// Web API client.
//
// Values come from, in increasing precedence, built-in defaults, a YAML
// file, a .env file and SLACK_* environment variables:
//
//	cfg, err := config.Load(config.WithConfigFile("slackweb.yml"))
//	client, err := httpclient.New(cfg.API.ClientConfig(log, nil))
//
// SLACK_TOKEN, SLACK_BASE_URL and SLACK_LOG_LEVEL are the common overrides.
package config
