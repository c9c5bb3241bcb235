// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/category"
)

// CategoryOptions captures the category flag for commands.
type CategoryOptions struct {
	Category string
	All      bool
}

func categoryNames() string {
	names := make([]string, 0, len(category.List))
	for _, c := range category.List {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// AddCategoryArgs wires the category a new task goes into.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", category.Other.String(),
		Wrap80("Category of the task, one of: "+categoryNames()+"."))
}

// AddCategoryFilterArgs wires the category used to narrow a listing.
func AddCategoryFilterArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", category.All.String(),
		Wrap80("Only tasks in this category, one of: all, "+categoryNames()+"."))
}

// AddAllTasksArg registers the flag that targets every task in the filter
// instead of explicit ids.
func AddAllTasksArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Apply to every task in the selected category.")
}

// Get parses the category flag for a new task.
func (o *CategoryOptions) Get() (category.Category, error) {
	return category.Parse(o.Category)
}

// Filter parses the category flag as a filter.
func (o *CategoryOptions) Filter() (category.Category, error) {
	return category.ParseFilter(o.Category)
}

// CategoryCompletions lists the values the category flag accepts.
func CategoryCompletions(filter bool) []string {
	out := make([]string, 0, len(category.List)+1)
	if filter {
		out = append(out, category.All.String())
	}
	for _, c := range category.List {
		out = append(out, c.String())
	}
	return out
}
