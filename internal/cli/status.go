package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusdeck/internal/model"
)

func addStatus(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the dashboard.",
		Example: `
focusdeck status
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), ro)
			if err != nil {
				return err
			}
			defer s.Close()
			printStatus(cmd.OutOrStdout(), s.State(), time.Now())
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func printStatus(w io.Writer, st model.AppState, now time.Time) {
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)
	accent := color.New(color.FgHiCyan)

	_, _ = title.Fprintln(w, model.GreetingFor(now))
	_, _ = faint.Fprintf(w, "%q\n\n", st.Quote)

	if st.DailyFocus == "" {
		_, _ = faint.Fprintln(w, "focus: (not set)")
	} else {
		_, _ = fmt.Fprint(w, "focus: ")
		_, _ = accent.Fprintln(w, st.DailyFocus)
	}

	counts := model.CountByView(st.Tasks)
	stats := model.ComputeStats(st.Tasks, nil, now)
	_, _ = fmt.Fprintf(w, "tasks: %d inbox, %d today, %d done (%d%% complete)\n",
		counts[model.CategoryInbox], counts[model.CategoryToday], counts[model.CategoryDone], stats.ProductivityScore)

	if st.BMI.Calculated() {
		_, _ = fmt.Fprintf(w, "bmi: %.1f (%s)\n", st.BMI.Result, st.BMI.Category)
	} else {
		_, _ = faint.Fprintln(w, "bmi: (not calculated)")
	}

	state := "paused"
	if st.Music.IsPlaying {
		state = "playing"
	}
	if track, ok := model.FindTrack(st.Music.CurrentTrack); ok {
		_, _ = fmt.Fprintf(w, "music: %s - %s [%s, %s]\n", track.Title, track.Artist, st.Music.Playlist.Label(), state)
	}

	notes := model.CountNotes(st.Notes)
	_, _ = fmt.Fprintf(w, "notes: %d words\n", notes.Words)
	_, _ = faint.Fprintf(w, "theme: %s | timer color: %s\n", st.BackgroundTheme.Info().Name, st.Timer.CustomColor)
}
