package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the config and task counts per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.Service(cmd)
			if err != nil {
				return err
			}
			i := info.Info{Config: s.cfg, Out: cmd.OutOrStdout(), Service: svc}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
