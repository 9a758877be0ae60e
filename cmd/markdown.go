package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown prints md to stdout, rendered for the terminal when stdout is one.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// writeMarkdown writes md to w, going through printMarkdown for stdout.
func writeMarkdown(w io.Writer, md string) error {
	if w == os.Stdout {
		printMarkdown(md)
		return nil
	}
	_, err := io.WriteString(w, md)
	return err
}
