package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, s *session) {
	co := &options.CategoryOptions{}
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
todo add buy milk --category life
todo add "finish the report" -c work
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := co.Get()
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
			a := add.Add{
				Title:    strings.Join(args, " "),
				Category: c,
				Order:    order,
				Service:  svc,
				Printer:  &printers.PrettyPrint{Out: cmd.OutOrStdout()},
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddCategoryArgs(cmd, co)
	registerCategoryCompletion(cmd, false)
	options.AddSortArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
