package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// syncProgressBar reports sync progress per client on a terminal.
type syncProgressBar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newSyncProgressBar(w io.Writer) *syncProgressBar {
	return &syncProgressBar{w: w}
}

func (p *syncProgressBar) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Syncing clients...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.w)
		}),
	)
}

func (p *syncProgressBar) Advance(clientName string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe("[cyan]" + clientName + "[reset]")
	if err := p.bar.Add(1); err != nil {
		slog.Warn("progress bar update failed", "error", err)
	}
}

func (p *syncProgressBar) Finish() {
	if p.bar == nil {
		return
	}
	if err := p.bar.Finish(); err != nil {
		slog.Warn("progress bar finish failed", "error", err)
	}
}
