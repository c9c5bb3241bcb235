package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/edit"
	"tableflip.dev/todo/pkg/task"
)

func addEdit(topLevel *cobra.Command, s *session) {
	var (
		title string
		cat   string
	)

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Rename a task or move it to another category",
		Example: `
todo edit 3f2a0c51-0d4e-4a57-8d0e-7c1f5f0b2a11 --title "buy oat milk"
todo edit 3f2a0c51-0d4e-4a57-8d0e-7c1f5f0b2a11 -c life
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && cat == "" {
				return errors.New("nothing to change, pass --title or --category")
			}
			var c category.Category
			if cat != "" {
				var err error
				if c, err = category.Parse(cat); err != nil {
					return err
				}
			}
			svc, err := s.Service(cmd)
			if err != nil {
				return err
			}
			id := task.ID(args[0])
			if title == "" {
				// Keep the current title.
				tasks, err := svc.Tasks(cmd.Context())
				if err != nil {
					return err
				}
				for _, t := range tasks {
					if t.ID == id {
						title = t.Title
					}
				}
				if title == "" {
					return fmt.Errorf("%w: %s", app.ErrNotFound, id)
				}
			}
			e := edit.Edit{
				ID:       id,
				Title:    title,
				Category: c,
				Service:  svc,
				Printer:  &printers.PrettyPrint{ShowID: true, Out: cmd.OutOrStdout()},
			}
			return e.Do(cmd.Context())
		},
		ValidArgsFunction: s.completeIDs,
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title.")
	cmd.Flags().StringVarP(&cat, "category", "c", "", "New category.")
	registerCategoryCompletion(cmd, false)

	topLevel.AddCommand(cmd)
}
