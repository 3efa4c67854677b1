package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusdeck/internal/dashboard"
	"github.com/sandeepkv93/focusdeck/internal/update"
)

func addUI(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the dashboard (default).",
		Example: `
focusdeck ui
focusdeck ui --ephemeral
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), ro)
		},
	}
	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context, ro *rootOptions) (err error) {
	cfg, err := loadConfig(ro)
	if err != nil {
		return err
	}
	logger, logs, st, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); err == nil {
			err = cerr
		}
		_ = logs.Close()
	}()

	var notifier dashboard.Notifier = dashboard.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = dashboard.ExecNotifier{}
	}
	rt, err := dashboard.Open(ctx, dashboard.Options{
		Persister:    st,
		Notifier:     notifier,
		Logger:       logger,
		AutoCycle:    cfg.Timer.AutoCycle,
		WorkMinutes:  cfg.Timer.WorkMinutes,
		BreakMinutes: cfg.Timer.BreakMinutes,
		Shuffle:      cfg.Shuffle,
		Buffer:       cfg.SchedulerBuffer,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); err == nil {
			err = cerr
		}
	}()

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}
	m := update.NewModel(rt, update.Options{WorkMinutes: cfg.Timer.WorkMinutes, ExportDir: exportDir})
	logger.Info("dashboard started", "backend", st.Backend(), "config", cfg.ConfigFile)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
