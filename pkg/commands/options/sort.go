package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/tasklist"
)

// SortOptions
type SortOptions struct {
	Order string
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	cmd.Flags().StringVar(&o.Order, "sort", "",
		`Time order inside each group, "asc" or "desc". Defaults to the configured order.`)
}

// Get returns the flag's order, or fallback when the flag is unset.
func (o *SortOptions) Get(fallback tasklist.SortOrder) (tasklist.SortOrder, error) {
	if o.Order == "" {
		return fallback, nil
	}
	return tasklist.ParseSortOrder(o.Order)
}
