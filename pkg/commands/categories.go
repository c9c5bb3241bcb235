package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Show the categories and their colors",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Categories(category.List...)
		},
	}

	topLevel.AddCommand(cmd)
}
