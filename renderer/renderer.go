package renderer

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/holdings"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates is rooted at the templates directory so that files are read by
// their base name.
var templates, _ = fs.Sub(templateFS, "templates")

// Markdown renders the Report to a markdown string.
func Markdown(r *Report) string {
	partials := map[string]string{
		"holdings_title":      "holdings_title.md",
		"holdings_account":    "holdings_account.md",
		"holdings_rejections": "holdings_rejections.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, r)
}

// Text writes the holdings of every account in the plain layout: the account
// name on its own line, one tab separated "asset quantity" line per holding
// (cash first), and a blank line.
func Text(w io.Writer, m map[string]holdings.Holdings) error {
	bw := bufio.NewWriter(w)
	for _, account := range holdings.Accounts(m) {
		fmt.Fprintln(bw, account)
		for _, h := range m[account] {
			fmt.Fprintf(bw, "%s\t%s\n", h.Asset, h.Quantity)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// JSON writes the holdings of every account as a single JSON object keyed
// by account.
func JSON(w io.Writer, m map[string]holdings.Holdings) error {
	data, err := holdings.MarshalAccounts(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// Rejections writes one line per rejected input line. Nothing is written
// when there are none.
func Rejections(w io.Writer, rejections []holdings.Rejection) {
	if len(rejections) == 0 {
		return
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d line(s) rejected:\n", len(rejections))
	for _, r := range rejections {
		fmt.Fprintf(bw, "  line %d: %v\n", r.Line, r.Err)
	}
	bw.Flush()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
