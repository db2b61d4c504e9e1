package cli

import (
	"khelkhatm/backend/activity"

	"github.com/spf13/cobra"
)

func NewActivityCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show coding activity from the tracking backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			client := activity.NewClient(cfg.LeetCodeBackendURL, cfg.LeetCodeAPIKey)
			live, err := client.Live(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s, err := client.Stats(cmd.Context())
			if err != nil {
				faint.Fprintf(cmd.ErrOrStderr(), "stats unavailable: %v\n", err)
			}

			renderLive(out, live, s)
			return nil
		},
	}
}
