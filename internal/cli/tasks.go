package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusdeck/internal/model"
)

func addTasks(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "tasks [inbox|today|done]",
		Short: "List tasks in a view.",
		Example: `
focusdeck tasks
focusdeck tasks inbox
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.CategoryInbox), string(model.CategoryToday), string(model.CategoryDone)},
		RunE: func(cmd *cobra.Command, args []string) error {
			view := model.CategoryToday
			if len(args) == 1 {
				view = model.Category(strings.ToLower(args[0]))
				if !view.IsValid() {
					return fmt.Errorf("unknown view %q (want inbox, today or done)", args[0])
				}
			}
			s, err := openSession(cmd.Context(), ro)
			if err != nil {
				return err
			}
			defer s.Close()
			printTasks(cmd.OutOrStdout(), view, model.FilterTasks(s.State().Tasks, view))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func printTasks(w io.Writer, view model.Category, tasks []model.Task) {
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	_, _ = title.Fprint(w, view.Label())
	_, _ = faint.Fprintf(w, " - %d\n", len(tasks))
	if len(tasks) == 0 {
		_, _ = faint.Fprintln(w, " none")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.AddRow("ID", "DONE", "PRIORITY", "TITLE")
	for _, t := range tasks {
		done := " "
		if t.Completed {
			done = "x"
		}
		priority := string(t.Priority)
		if priority == "" {
			priority = "-"
		}
		tbl.AddRow(shortID(t.ID), done, priority, t.Title)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
