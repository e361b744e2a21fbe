package ui

import "github.com/atotto/clipboard"

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyResult puts the session summary on the system clipboard and sets the
// status line shown on the won screen.
func (g *Game) copyResult() {
	summary := g.session.Summary()
	if err := writeClipboard(summary); err != nil {
		// atotto needs xclip/xsel (or wl-clipboard) on Linux.
		g.status = "Couldn't copy (install xclip/xsel on Linux)."
		g.log.Warn().Err(err).Msg("clipboard copy failed")
		return
	}
	g.status = "Result copied to clipboard."
	g.log.Debug().Str("summary", summary).Msg("result copied")
}
