package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// reportError prints "uniqr: <err>" to w. The prefix is styled only when w
// is a terminal.
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	r := lipgloss.NewRenderer(w)
	prefix := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("uniqr:")
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
