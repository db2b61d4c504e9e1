package cli

import (
	"fmt"
	"strings"

	"khelkhatm/backend/dashboard"
	"khelkhatm/backend/models"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// resolveQuestion accepts a full id or a unique prefix of one.
func resolveQuestion(questions []models.Question, ref string) (*models.Question, error) {
	if id, err := uuid.Parse(ref); err == nil {
		for i := range questions {
			if questions[i].ID == id {
				return &questions[i], nil
			}
		}
		return nil, fmt.Errorf("no question with id %s", ref)
	}

	var match *models.Question
	for i := range questions {
		if strings.HasPrefix(questions[i].ID.String(), strings.ToLower(ref)) {
			if match != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", ref)
			}
			match = &questions[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no question with id prefix %q", ref)
	}
	return match, nil
}

func NewMarkCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <id> <status>",
		Short: "Change a question's status",
		Long: `Change a question's status to TODO, REVISIT or DONE.

The id may be a unique prefix. The change is shown as pending, then
confirmed with the stored value or reverted if the store rejects it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			env, err := opts.env()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			state, err := dashboard.Load(ctx, env.Repo, env.Cfg.DailyTarget)
			if err != nil {
				return err
			}

			q, err := resolveQuestion(state.Questions, args[0])
			if err != nil {
				return err
			}
			status := models.Status(strings.ToUpper(args[1]))
			now := opts.now(env.Cfg)

			update, err := state.BeginStatusChange(q.ID, status, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s: %s -> %s\n", faint.Sprint(update.Phase), update.Prior.Title, update.Prior.Status, update.Guess.Status)

			stored, err := env.Repo.UpdateQuestionStatus(ctx, q.ID, status, nil, now)
			if err != nil {
				if rerr := state.Revert(update); rerr != nil {
					return rerr
				}
				fmt.Fprintf(out, "%s %s stays %s\n", color.RedString(string(update.Phase)), update.Value.Title, update.Value.Status)
				return err
			}
			if err := state.Confirm(update, *stored); err != nil {
				return err
			}

			summary, err := env.Repo.Summary(ctx)
			if err != nil {
				return err
			}
			state.ApplySummary(summary)

			fmt.Fprintf(out, "%s %s is %s (%d done, %d revisit of %d)\n",
				color.GreenString(string(update.Phase)),
				update.Value.Title,
				update.Value.Status,
				state.Summary.DSA.Done,
				state.Summary.DSA.Revisit,
				state.Summary.DSA.Total)
			return nil
		},
	}
}
