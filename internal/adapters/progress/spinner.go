package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a spinner-based progress reporter on stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.enterStage(event.Stage)
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Stage == usecase.StageCompleted {
		r.completeCurrentStage()
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.display()
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error stops the spinner and marks the running stage as failed
func (r *SpinnerProgressReporter) Error(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}

	label := message
	if n := len(r.stages); n > 0 && r.stages[n-1].EndTime.IsZero() {
		r.stages[n-1].EndTime = time.Now()
		label = fmt.Sprintf("%s: %s", r.stages[n-1].Stage, message)
	}
	color.New(color.FgRed).Fprintf(r.out, "✗ %s\n", label)
}

// pause stops the spinner around fn and restarts it if it was running
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// enterStage closes the running stage when a new one starts
func (r *SpinnerProgressReporter) enterStage(stage usecase.ExecutionStage) {
	if n := len(r.stages); n > 0 && r.stages[n-1].Stage == stage {
		return
	}
	r.completeCurrentStage()
	r.stages = append(r.stages, stageInfo{
		Stage:     stage,
		StartTime: time.Now(),
	})
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if n := len(r.stages); n > 0 && r.stages[n-1].EndTime.IsZero() {
		r.stages[n-1].EndTime = time.Now()
	}
}

// display renders the stage trail, e.g. "✓ Loading (12ms) → ● Sending"
func (r *SpinnerProgressReporter) display() string {
	parts := make([]string, 0, len(r.stages))
	for i, stage := range r.stages {
		var icon string
		var stageColor *color.Color
		var duration string

		if !stage.EndTime.IsZero() {
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		} else {
			icon = "●"
			stageColor = color.New(color.FgYellow)
		}

		part := fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage.Stage)), duration)
		if i == len(r.stages)-1 && stage.Message != "" {
			part += ": " + stage.Message
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " → ")
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
