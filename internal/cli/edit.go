package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusdeck/internal/model"
)

// runLine applies one palette command headlessly and prints its result.
func runLine(cmd *cobra.Command, ro *rootOptions, line string) error {
	s, err := openSession(cmd.Context(), ro)
	if err != nil {
		return err
	}
	defer s.Close()
	res, err := s.run(cmd.Context(), line)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func addAdd(topLevel *cobra.Command, ro *rootOptions) {
	today := false
	priority := ""
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task.",
		Example: `
focusdeck add write the report
focusdeck add --today --priority high ship the release
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := []string{"add", strings.Join(args, " ")}
			if today {
				parts = append(parts, "#today")
			}
			if priority != "" {
				p := model.Priority(strings.ToLower(priority))
				if !p.IsValid() {
					return fmt.Errorf("unknown priority %q (want low, medium or high)", priority)
				}
				parts = append(parts, "!"+string(p))
			}
			return runLine(cmd, ro, strings.Join(parts, " "))
		},
	}
	cmd.Flags().BoolVar(&today, "today", false, "File the task under today instead of the inbox.")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Task priority: low, medium or high.")
	topLevel.AddCommand(cmd)
}

func addFocus(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "focus <text>",
		Short: "Set today's main focus.",
		Example: `
focusdeck focus finish the quarterly plan
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, ro, "focus "+strings.Join(args, " "))
		},
	}
	topLevel.AddCommand(cmd)
}

func addBMI(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "bmi <height-cm> <weight-kg>",
		Short: "Calculate and store your BMI.",
		Example: `
focusdeck bmi 180 75
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, ro, "bmi "+args[0]+" "+args[1])
		},
	}
	topLevel.AddCommand(cmd)
}
