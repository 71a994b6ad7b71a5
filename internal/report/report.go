// Package report renders daily inflammation statistics for researchers.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"inflammation/internal/config"
	"inflammation/internal/errors"
	"inflammation/internal/inflammation"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

var columns = []string{"Day", "Mean", "Max", "Min", "Std"}

// Render writes the summary to w in the requested format (text, markdown or html)
func Render(w io.Writer, title string, summary inflammation.DailySummary, format string) error {
	switch format {
	case config.FormatText:
		return renderText(w, summary)
	case config.FormatMarkdown:
		_, err := w.Write(Markdown(title, summary))
		return err
	case config.FormatHTML:
		_, err := w.Write(HTML(title, summary))
		return err
	default:
		return errors.InvalidInput(fmt.Sprintf("unknown report format %q", format))
	}
}

// Markdown renders the summary as a heading and a pipe table
func Markdown(title string, summary inflammation.DailySummary) []byte {
	var buf bytes.Buffer
	if title != "" {
		fmt.Fprintf(&buf, "# %s\n\n", title)
	}

	fmt.Fprint(&buf, "|")
	for _, c := range columns {
		fmt.Fprintf(&buf, " %s |", c)
	}
	fmt.Fprint(&buf, "\n|")
	for range columns {
		fmt.Fprint(&buf, " --- |")
	}
	fmt.Fprintln(&buf)

	for day := 0; day < summary.Days; day++ {
		fmt.Fprint(&buf, "|")
		for _, cell := range row(summary, day) {
			fmt.Fprintf(&buf, " %s |", cell)
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes()
}

// HTML converts the markdown rendering into an HTML fragment
func HTML(title string, summary inflammation.DailySummary) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(Markdown(title, summary), p, renderer)
}

func renderText(w io.Writer, summary inflammation.DailySummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, c := range columns {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)

	for day := 0; day < summary.Days; day++ {
		for _, cell := range row(summary, day) {
			fmt.Fprintf(tw, "%s\t", cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func row(summary inflammation.DailySummary, day int) []string {
	return []string{
		strconv.Itoa(day),
		formatValue(summary.Mean[day]),
		formatValue(summary.Max[day]),
		formatValue(summary.Min[day]),
		formatValue(summary.Std[day]),
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
