// Command mditdump parses a Markdown file (or stdin) and prints a
// debug tree dump: one line per node giving its kind, byte span, and
// attributes. It does not render HTML — that is out of scope for this
// module.
//
// Usage:
//
//	mditdump [-max-nesting N] [file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ShafSpecs/mdit-go/cmark"
	"github.com/ShafSpecs/mdit-go/mdit"
	"github.com/ShafSpecs/mdit-go/node"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mditdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	maxNesting := flag.Int("max-nesting", 100, "maximum label/link recursion depth")
	flag.Parse()

	src, err := readInput(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	md := mdit.New()
	md.MaxNesting = *maxNesting

	root := md.Parse(src)
	dump(os.Stdout, root, 0)
	return nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func dump(w io.Writer, n *node.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	span := ""
	if n.HasSpan {
		span = fmt.Sprintf(" [%d,%d)", n.Span.Start, n.Span.End)
	}
	attrs := ""
	if len(n.Attrs) > 0 {
		parts := make([]string, len(n.Attrs))
		for i, a := range n.Attrs {
			parts[i] = fmt.Sprintf("%s=%q", a.Name, a.Value)
		}
		attrs = " " + strings.Join(parts, " ")
	}
	fmt.Fprintf(w, "%s%s%s%s %s\n", indent, n.Value.NodeValueName(), span, attrs, describe(n.Value))
	for _, c := range n.Children {
		dump(w, c, depth+1)
	}
}

// describe returns a short, type-specific summary for payload variants
// whose interesting content isn't captured by the node kind alone.
func describe(v node.Value) string {
	switch val := v.(type) {
	case node.Text:
		return fmt.Sprintf("%q", val.Content)
	case cmark.TextSpecial:
		return fmt.Sprintf("%q (markup %q)", val.Content, val.Markup)
	case cmark.Autolink:
		return fmt.Sprintf("url=%q", val.URL)
	case cmark.HtmlInline:
		return fmt.Sprintf("%q", val.Content)
	case cmark.Link:
		return linkDescribe(val.Href, val.Title, val.HasTitle)
	case cmark.Image:
		return linkDescribe(val.Href, val.Title, val.HasTitle)
	default:
		return ""
	}
}

func linkDescribe(href, title string, hasTitle bool) string {
	if hasTitle {
		return fmt.Sprintf("href=%q title=%q", href, title)
	}
	return fmt.Sprintf("href=%q", href)
}
