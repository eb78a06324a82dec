package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kbukum/slackweb/webapi"
)

func newUploadCmd(a *app) *cobra.Command {
	var opts webapi.UploadOptions
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file and share it to channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if opts.Filename == "" {
				opts.Filename = filepath.Base(args[0])
			}
			f, err := api.UploadFile(cmd.Context(), data, opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.Filename, "filename", "", "name shown in Slack (default: base name of the file)")
	flags.StringVar(&opts.Filetype, "filetype", webapi.DefaultFiletype, "Slack file type")
	flags.StringVar(&opts.Title, "title", "", "file title")
	flags.StringVar(&opts.InitialComment, "comment", "", "initial comment")
	flags.StringSliceVar(&opts.Channels, "channels", nil, "channels to share to")
	return cmd
}
