package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dce/renderer"
	"github.com/etnz/dce/workflow"
)

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) { renderMarkdown(os.Stdout, md) }

// renderMarkdown renders markdown to w, or writes it as is when it cannot be
// styled.
func renderMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}

// page is the full display of a session: the account header followed by
// the transfer history.
func page(s workflow.Snapshot) string {
	return renderer.AccountMarkdown(s.Account) + "\n" + renderer.TransfersMarkdown(s.Transfers)
}
