package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(todo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(todo completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			default:
				return fmt.Errorf("unsupported shell %q", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

func registerCategoryCompletion(cmd *cobra.Command, filter bool) {
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return options.CategoryCompletions(filter), cobra.ShellCompDirectiveNoFileComp
	})
}

// completeIDs offers stored task ids, described by their titles.
func (s *session) completeIDs(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	svc, err := s.Service(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	tasks, err := svc.Tasks(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, fmt.Sprintf("%s\t%s", t.ID, t.Title))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
