package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootOptions struct {
	configFile string
	ephemeral  bool
	build      BuildInfo
}

func New(info BuildInfo) *cobra.Command {
	ro := &rootOptions{build: info}
	cmd := &cobra.Command{
		Use:           "focusdeck",
		Short:         "A productivity dashboard for the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), ro)
		},
	}
	cmd.PersistentFlags().StringVar(&ro.configFile, "config", "", "Path to a config file (default .focusdeck.yaml in the working or home directory).")
	cmd.PersistentFlags().BoolVar(&ro.ephemeral, "ephemeral", false, "Keep state in memory; nothing is read from or written to disk.")

	addCommands(cmd, ro)
	return cmd
}

func addCommands(topLevel *cobra.Command, ro *rootOptions) {
	addUI(topLevel, ro)
	addStatus(topLevel, ro)
	addTasks(topLevel, ro)
	addAdd(topLevel, ro)
	addFocus(topLevel, ro)
	addBMI(topLevel, ro)
	addNotes(topLevel, ro)
	addReset(topLevel, ro)
	addVersion(topLevel, ro)
}
