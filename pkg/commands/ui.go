package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, s *session) {
	so := &options.SortOptions{}
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
todo ui
todo ui --demo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.Service(cmd)
			if err != nil {
				return err
			}
			order, err := so.Get(s.cfg.SortOrder)
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc, Order: order, Demo: demo}
			return i.Do(cmd.Context())
		},
	}

	options.AddSortArgs(cmd, so)
	cmd.Flags().BoolVar(&demo, "demo", false, "Run against sample tasks kept in memory.")

	topLevel.AddCommand(cmd)
}
