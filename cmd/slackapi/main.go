// Command slackapi calls Slack Web API methods from the shell.
//
// Configuration comes from an optional YAML file, an optional .env file and
// SLACK_* environment variables; flags override all three.
//
//	SLACK_TOKEN=xoxb-... slackapi call chat.postMessage channel=C123 text=hello
//	slackapi upload report.pdf --channels C123 --title "Weekly report"
package main

import (
	"context"
	"os"
)

func main() {
	if err := execute(context.Background(), &app{}, os.Args[1:], nil); err != nil {
		os.Exit(1)
	}
}
