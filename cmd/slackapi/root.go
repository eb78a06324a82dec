package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/slackweb/config"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/logger"
	"github.com/kbukum/slackweb/observability"
	"github.com/kbukum/slackweb/version"
	"github.com/kbukum/slackweb/webapi"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfgFile string
	envFile string
	token   string
	baseURL string

	cfg      *config.Config
	log      *logger.Logger
	client   *httpclient.Client
	shutdown []func(context.Context) error
}

// execute runs the command tree and shuts telemetry down however the
// command ends.
func execute(ctx context.Context, a *app, args []string, out io.Writer) (err error) {
	defer func() {
		if cerr := a.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	root := newRootCmd(a)
	if out != nil {
		root.SetOut(out)
		root.SetErr(out)
	}
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "slackapi",
		Short:        "Call Slack Web API methods",
		Long:         longRoot,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./slackweb.yml or ./config.yml)")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file to load (default ./.env)")
	flags.StringVar(&a.token, "token", "", "token to call with (overrides SLACK_TOKEN)")
	flags.StringVar(&a.baseURL, "base-url", "", "API root (overrides SLACK_BASE_URL)")

	root.AddCommand(
		newCallCmd(a),
		newUploadCmd(a),
		newAuthTestCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and builds the logger, telemetry and client.
func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var opts []config.LoaderOption
	if a.cfgFile != "" {
		opts = append(opts, config.WithConfigFile(a.cfgFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	if a.baseURL != "" {
		opts = append(opts, withBaseURL(a.baseURL))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if a.token != "" {
		cfg.API.Token = a.token
	}
	a.cfg = cfg
	a.log = logger.New(&cfg.Logging, cfg.Name)

	var metrics *observability.Metrics
	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.TracerConfig(version.Short(), a.log))
		if err != nil {
			return err
		}
		a.shutdown = append(a.shutdown, tp.Shutdown)

		if cfg.Tracing.Metrics {
			mp, err := observability.InitMeter(ctx, cfg.MeterConfig(version.Short(), a.log))
			if err != nil {
				return err
			}
			a.shutdown = append(a.shutdown, mp.Shutdown)
			metrics, err = observability.NewMetrics(observability.Meter("github.com/kbukum/slackweb/cmd/slackapi"))
			if err != nil {
				return err
			}
		}
	}

	client, err := httpclient.New(cfg.API.ClientConfig(a.log, metrics))
	if err != nil {
		return err
	}
	a.client = client
	return nil
}

func (a *app) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var first error
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		if err := a.shutdown[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	a.shutdown = nil
	return first
}

func (a *app) api() (*webapi.WebAPI, error) {
	if a.cfg.API.Token == "" {
		return nil, fmt.Errorf("no token: set SLACK_TOKEN or pass --token")
	}
	return webapi.NewWithClient(a.cfg.API.Token, a.client), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// withBaseURL overrides the configured API root.
func withBaseURL(u string) config.LoaderOption {
	return config.WithOverride("api.base_url", u)
}

var longRoot = `
Call Slack Web API methods from the shell.

Configuration is read from a YAML file, a .env file and SLACK_* environment
variables, in increasing order of precedence. Flags win over all of them.

Examples:
  # Check a token.
  SLACK_TOKEN=xoxb-... slackapi auth-test

  # Post a message.
  slackapi call chat.postMessage channel=C123 text="hello there"
`
