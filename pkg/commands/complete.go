package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/complete"
	"tableflip.dev/todo/pkg/task"
)

func addComplete(topLevel *cobra.Command, s *session) {
	cmd := statusCommand(s, true)
	cmd.Use = "done [task id...]"
	cmd.Aliases = []string{"complete", "completed"}
	cmd.Short = "Mark tasks complete"
	cmd.Example = `
todo done 3f2a0c51-0d4e-4a57-8d0e-7c1f5f0b2a11
todo done --all --category work
`
	topLevel.AddCommand(cmd)
}

func addUndo(topLevel *cobra.Command, s *session) {
	cmd := statusCommand(s, false)
	cmd.Use = "undo [task id...]"
	cmd.Aliases = []string{"reopen"}
	cmd.Short = "Mark tasks incomplete"
	cmd.Example = `
todo undo 3f2a0c51-0d4e-4a57-8d0e-7c1f5f0b2a11
todo undo --all
`
	topLevel.AddCommand(cmd)
}

func statusCommand(s *session, completed bool) *cobra.Command {
	co := &options.CategoryOptions{}
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := co.Filter()
			if err != nil {
				return err
			}
			svc, err := s.Service(cmd)
			if err != nil {
				return err
			}
			order, err := so.Get(s.cfg.SortOrder)
			if err != nil {
				return err
			}
			r := complete.Complete{
				IDs:       taskIDs(args),
				All:       co.All,
				Category:  c,
				Completed: completed,
				Order:     order,
				Service:   svc,
				Printer:   &printers.PrettyPrint{ShowID: true, Out: cmd.OutOrStdout()},
			}
			return r.Do(cmd.Context())
		},
		ValidArgsFunction: s.completeIDs,
	}

	options.AddCategoryFilterArgs(cmd, co)
	registerCategoryCompletion(cmd, true)
	options.AddAllTasksArg(cmd, co)
	options.AddSortArgs(cmd, so)
	return cmd
}

func taskIDs(args []string) []task.ID {
	ids := make([]task.ID, 0, len(args))
	for _, a := range args {
		ids = append(ids, task.ID(a))
	}
	return ids
}
