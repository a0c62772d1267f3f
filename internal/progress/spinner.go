package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Walker shows a spinner on stderr while commits are being read. It is a
// no-op when stderr is not a terminal, so scripted runs stay silent.
type Walker struct {
	spin *spinner.Spinner
}

// NewWalker creates a commit-walk spinner sized to the terminal's
// capabilities. Pass enabled=false (e.g. for --quiet) to force the no-op.
func NewWalker(rangeExpr string, enabled bool) *Walker {
	caps := DetectTerminalCapabilities()
	if !enabled || !caps.IsTTY {
		return &Walker{}
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(
		spinner.CharSets[symbols.SpinnerSet],
		100*time.Millisecond,
		spinner.WithWriter(os.Stderr),
	)
	s.Suffix = " reading commits " + rangeExpr

	return &Walker{spin: s}
}

// Start begins the spinner animation.
func (w *Walker) Start() {
	if w.spin != nil {
		w.spin.Start()
	}
}

// Stop halts the spinner and clears its line.
func (w *Walker) Stop() {
	if w.spin != nil {
		w.spin.Stop()
	}
}
