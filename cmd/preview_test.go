package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/remindapp/remindapp/internal/reminder"
)

var previewNow = reminder.FixedClock(time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local))

func TestRunPreview(t *testing.T) {
	var out bytes.Buffer

	err := runPreview(&out, previewNow, previewOptions{
		message: "Buy milk",
		date:    "12/25/2025",
		time:    "09:00",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "Reminder set for 12/25/2025 at 9:0!\n" +
		"Reminder Message: Buy milk\n" +
		"Date: 12/25/2025\n" +
		"Time: 9:0\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunPreviewErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    previewOptions
		wantErr error
		wantMsg string
	}{
		{
			name:    "past time today",
			opts:    previewOptions{message: "Buy milk", date: "6/1/2025", time: "9:15"},
			wantErr: reminder.ErrTimeInPast,
		},
		{
			name:    "past date",
			opts:    previewOptions{message: "Buy milk", date: "5/31/2025", time: "9:15"},
			wantErr: reminder.ErrDateInPast,
		},
		{
			name:    "bad date",
			opts:    previewOptions{message: "Buy milk", date: "25/12/2025", time: "9:00"},
			wantMsg: "invalid --date",
		},
		{
			name:    "bad time",
			opts:    previewOptions{message: "Buy milk", date: "12/25/2025", time: "9am"},
			wantMsg: "invalid --time",
		},
		{
			name:    "missing message",
			opts:    previewOptions{date: "12/25/2025", time: "9:00"},
			wantMsg: "reminder not set",
		},
		{
			name:    "missing time",
			opts:    previewOptions{message: "Buy milk", date: "12/25/2025"},
			wantMsg: "reminder not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := runPreview(&out, previewNow, tt.opts)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantMsg)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be printed, got %q", out.String())
			}
		})
	}
}
