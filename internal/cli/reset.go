package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusdeck/internal/storage"
)

func addReset(topLevel *cobra.Command, ro *rootOptions) {
	yes := false
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored dashboard state.",
		Example: `
focusdeck reset --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			s, err := openSession(cmd.Context(), ro)
			if err != nil {
				return err
			}
			defer s.Close()
			err = s.storage.Reset(cmd.Context())
			switch {
			case errors.Is(err, storage.ErrNotFound):
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing stored")
				return nil
			case err != nil:
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "state reset")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset.")
	topLevel.AddCommand(cmd)
}
