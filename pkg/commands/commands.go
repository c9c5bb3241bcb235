package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
)

// New builds the todo command tree.
func New() *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         options.Wrap80("A categorized to-do list for the terminal."),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.configure()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			s.finish(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log debug output to stderr.")

	addCommands(cmd, s)
	return cmd
}

func addCommands(topLevel *cobra.Command, s *session) {
	addAdd(topLevel, s)
	addGet(topLevel, s)
	addComplete(topLevel, s)
	addUndo(topLevel, s)
	addRemove(topLevel, s)
	addEdit(topLevel, s)
	addClear(topLevel, s)
	addCategories(topLevel)
	addInfo(topLevel, s)
	addUI(topLevel, s)
	addVersion(topLevel)
	addCompletions(topLevel)
}
