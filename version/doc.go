// Package version reports build information and the client User-Agent.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/slackweb/version.Version=1.0.0"
package version
