package cli

import (
	"khelkhatm/backend/dashboard"

	"github.com/spf13/cobra"
)

func NewStatsCommand(opts *Options) *cobra.Command {
	var (
		month  int
		target int
		phase  string
		topic  string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the completion calendar, streak and projection",
		Long: `Show the monthly completion calendar with streak, projected finish date,
the last seven days of habits and per-topic progress.

Calendar shading: blank none, "." one, ":" two or three, "#" four or more.

EXAMPLES:

  tracker stats                  # current month
  tracker stats --month -1       # previous month
  tracker stats --target 5       # project at five questions a day`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}

			state, err := dashboard.Load(cmd.Context(), env.Repo, env.Cfg.DailyTarget)
			if err != nil {
				return err
			}

			state.MonthOffset = month
			if cmd.Flags().Changed("target") {
				state.DailyTarget = target
			}
			state.Filter = dashboard.Filter{Phase: phase, Topic: topic}

			RenderStats(cmd.OutOrStdout(), state.Derive(opts.now(env.Cfg)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month offset from the current month")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "questions per day used for the projection")
	cmd.Flags().StringVar(&phase, "phase", "", "limit topic progress to a phase")
	cmd.Flags().StringVar(&topic, "topic", "", "limit topic progress to a topic")
	return cmd
}

