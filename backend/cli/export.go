package cli

import (
	"fmt"

	"khelkhatm/backend/export"
	"khelkhatm/backend/repository"

	"github.com/spf13/cobra"
)

func NewExportCommand(opts *Options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write questions, concepts and daily logs to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var data export.Data
			if data.Questions, err = env.Repo.ListQuestions(ctx, repository.QuestionFilter{}); err != nil {
				return err
			}
			if data.Concepts, err = env.Repo.ListConcepts(ctx); err != nil {
				return err
			}
			if data.Logs, err = env.Repo.ListDailyLogs(ctx, 0); err != nil {
				return err
			}

			if err := export.SaveAs(out, data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions, %d concepts and %d daily logs to %s\n",
				len(data.Questions), len(data.Concepts), len(data.Logs), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "tracker.xlsx", "output file")
	return cmd
}
