package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/remindapp/remindapp/internal/reminder"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	message string
	date    string
	time    string
}

var previewOpts previewOptions

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Set a reminder without the UI and print the result",
	Long: `Run the message, date, and time through the same rules as the UI
and print the confirmation it would show.`,
	Example: `  remindapp preview -m "Buy milk" --date 12/25/2025 --time 9:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd.OutOrStdout(), reminder.SystemClock{}, previewOpts)
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOpts.message, "message", "m", "", "Reminder message")
	previewCmd.Flags().StringVar(&previewOpts.date, "date", "", "Date as M/D/YYYY")
	previewCmd.Flags().StringVar(&previewOpts.time, "time", "", "Time as H:MM (24-hour)")
	rootCmd.AddCommand(previewCmd)
}

// flagDate is a DateSource backed by a command-line value.
type flagDate struct {
	value string
	err   error
}

func (f *flagDate) PickDate(floor time.Time) (int, time.Month, int, bool) {
	if f.value == "" {
		return 0, 0, 0, false
	}
	t, err := time.ParseInLocation("1/2/2006", f.value, floor.Location())
	if err != nil {
		f.err = fmt.Errorf("invalid --date %q: want M/D/YYYY", f.value)
		return 0, 0, 0, false
	}
	return t.Year(), t.Month(), t.Day(), true
}

// flagTime is a TimeSource backed by a command-line value.
type flagTime struct {
	value string
	err   error
}

func (f *flagTime) PickTime(initial time.Time) (int, int, bool) {
	if f.value == "" {
		return 0, 0, false
	}
	t, err := time.Parse("15:04", f.value)
	if err != nil {
		f.err = fmt.Errorf("invalid --time %q: want H:MM", f.value)
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

// printer writes the effects the UI would display.
type printer struct {
	out   io.Writer
	state *reminder.State
}

func (p *printer) Status(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *printer) Details(visible bool) {
	if !visible {
		return
	}
	d := p.state.Draft()
	fmt.Fprintf(p.out, "Reminder Message: %s\n", d.Message)
	fmt.Fprintf(p.out, "Date: %s\n", d.DateDisplay())
	fmt.Fprintf(p.out, "Time: %s\n", d.TimeDisplay())
}

func runPreview(out io.Writer, clock reminder.Clock, opts previewOptions) error {
	p := &printer{out: out}
	state := reminder.NewState(clock, p)
	p.state = state

	state.SetMessage(opts.message)

	dates := &flagDate{value: opts.date}
	if res, ok := state.PickDateFrom(dates); ok && !res.OK() {
		return fmt.Errorf("date %s: %w", opts.date, res.Err)
	}
	if dates.err != nil {
		return dates.err
	}

	times := &flagTime{value: opts.time}
	if res, ok := state.PickTimeFrom(times); ok && !res.OK() {
		return fmt.Errorf("time %s: %w", opts.time, res.Err)
	}
	if times.err != nil {
		return times.err
	}

	if err := state.Confirm(); err != nil {
		return fmt.Errorf("reminder not set: %w", err)
	}
	return nil
}
