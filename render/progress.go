package render

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress is a progress bar safe for use from several goroutines.
// A disabled Progress accepts all calls and draws nothing.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a bar counting up to total on w, or a disabled one when enabled is false
func NewProgress(w io.Writer, total int, description string, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return &Progress{bar: bar}
}

// Step advances the bar by one processed item
func (p *Progress) Step(string) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Done completes and clears the bar
func (p *Progress) Done() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
