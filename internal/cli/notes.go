package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusdeck/internal/storage"
)

func addNotes(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Work with notes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	export := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write notes to productivity-notes-YYYY-MM-DD.txt.",
		Example: `
focusdeck notes export
focusdeck notes export ~/Documents
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			s, err := openSession(cmd.Context(), ro)
			if err != nil {
				return err
			}
			defer s.Close()
			path, err := storage.ExportNotes(dir, s.State().Notes, time.Now())
			if errors.Is(err, storage.ErrEmptyNotes) {
				return errors.New("nothing to export: notes are empty")
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(export)
	topLevel.AddCommand(cmd)
}
