package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, s *session) {
	co := &options.CategoryOptions{}
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		Use:     "rm [task id...]",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete tasks",
		Example: `
todo rm 3f2a0c51-0d4e-4a57-8d0e-7c1f5f0b2a11
todo rm --all --category study
`,
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
			r := remove.Remove{
				IDs:      taskIDs(args),
				All:      co.All,
				Category: c,
				Order:    order,
				Service:  svc,
				Printer:  &printers.PrettyPrint{ShowID: true, Out: cmd.OutOrStdout()},
			}
			return r.Do(cmd.Context())
		},
		ValidArgsFunction: s.completeIDs,
	}

	options.AddCategoryFilterArgs(cmd, co)
	registerCategoryCompletion(cmd, true)
	options.AddAllTasksArg(cmd, co)
	options.AddSortArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
