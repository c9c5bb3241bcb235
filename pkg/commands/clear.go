package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command, s *session) {
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Example: `
todo clear
todo clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.Service(cmd)
			if err != nil {
				return err
			}
			c := clear.Clear{
				Yes:     yes,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Service: svc,
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
