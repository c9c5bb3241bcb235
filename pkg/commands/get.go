package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/get"
	"tableflip.dev/todo/pkg/timeutil"
)

func addGet(topLevel *cobra.Command, s *session) {
	co := &options.CategoryOptions{}
	so := &options.SortOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	since := ""

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks, incomplete first",
		Example: `
todo list
todo ls --category work --sort asc
todo list -o json
todo list --since 3d
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := func() error {
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
				var age time.Duration
				if since != "" {
					if age, err = timeutil.ParseAge(since); err != nil {
						return err
					}
				}
				g := get.Get{
					Category: c,
					Order:    order,
					Since:    age,
					Output:   oo,
					Service:  svc,
					Printer:  &printers.PrettyPrint{ShowID: io.ShowID, Out: cmd.OutOrStdout()},
				}
				return g.Do(cmd.Context())
			}()
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	options.AddCategoryFilterArgs(cmd, co)
	registerCategoryCompletion(cmd, true)
	options.AddSortArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&since, "since", "", `Only tasks added within this age, for example "3d" or "1w2d".`)

	topLevel.AddCommand(cmd)
}
