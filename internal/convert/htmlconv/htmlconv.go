// Package htmlconv converts HTML documents to Markdown by walking the
// parsed DOM tree produced by golang.org/x/net/html.
package htmlconv

import (
	"context"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// Converter accepts HTML streams by mimetype or extension.
type Converter struct{}

// New returns an HTML Converter.
func New() *Converter { return &Converter{} }

func (c *Converter) Accepts(_ []byte, info streaminfo.StreamInfo) bool {
	switch info.Mimetype {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return info.Extension == ".html" || info.Extension == ".htm"
}

func (c *Converter) Convert(_ context.Context, stream dispatch.Stream, _ streaminfo.StreamInfo, _ dispatch.ConvertOptions) (dispatch.ConverterResult, error) {
	doc, err := html.Parse(stream)
	if err != nil {
		return dispatch.ConverterResult{}, merr.Wrap(merr.FileConversionErr, "failed to parse html", err)
	}

	w := &walker{}
	w.walk(doc)
	md := strings.TrimSpace(collapseBlankLines(w.b.String()))

	return dispatch.ConverterResult{Markdown: md, Title: w.title}, nil
}

type walker struct {
	b     strings.Builder
	title string
	// orderedStack has one entry per open <ul>/<ol>: its length sets the
	// <li> indentation and its top entry tells <li> which marker to use.
	// orderedCounts numbers the items of each open list. listDepth is not
	// read or written.
	listDepth     int
	orderedStack  []bool
	orderedCounts []int
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.TextNode {
		text := n.Data
		if strings.TrimSpace(text) != "" {
			w.b.WriteString(text)
		}
		return
	}
	if n.Type != html.ElementNode {
		w.walkChildren(n)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style:
		return
	case atom.Head:
		// Only <title> is taken from <head>; nothing else there is rendered.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Title {
				w.title = strings.TrimSpace(textContent(c))
			}
		}
		return
	case atom.Title:
		w.title = strings.TrimSpace(textContent(n))
		return
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.DataAtom - atom.H1 + 1)
		w.b.WriteString("\n\n" + strings.Repeat("#", level) + " ")
		w.walkChildren(n)
		w.b.WriteString("\n\n")
	case atom.P, atom.Div:
		w.b.WriteString("\n\n")
		w.walkChildren(n)
		w.b.WriteString("\n\n")
	case atom.Br:
		w.b.WriteString("  \n")
	case atom.Hr:
		w.b.WriteString("\n\n---\n\n")
	case atom.Strong, atom.B:
		w.b.WriteString("**")
		w.walkChildren(n)
		w.b.WriteString("**")
	case atom.Em, atom.I:
		w.b.WriteString("_")
		w.walkChildren(n)
		w.b.WriteString("_")
	case atom.Code:
		w.b.WriteString("`")
		w.walkChildren(n)
		w.b.WriteString("`")
	case atom.Pre:
		w.b.WriteString("\n\n```\n")
		w.b.WriteString(textContent(n))
		w.b.WriteString("\n```\n\n")
	case atom.A:
		href := attr(n, "href")
		w.b.WriteString("[")
		w.walkChildren(n)
		w.b.WriteString("](" + href + ")")
	case atom.Img:
		alt := attr(n, "alt")
		src := attr(n, "src")
		w.b.WriteString("![" + alt + "](" + src + ")")
	case atom.Ul:
		w.orderedStack = append(w.orderedStack, false)
		w.orderedCounts = append(w.orderedCounts, 0)
		w.b.WriteString("\n")
		w.walkChildren(n)
		w.orderedStack = w.orderedStack[:len(w.orderedStack)-1]
		w.orderedCounts = w.orderedCounts[:len(w.orderedCounts)-1]
		w.b.WriteString("\n")
	case atom.Ol:
		w.orderedStack = append(w.orderedStack, true)
		w.orderedCounts = append(w.orderedCounts, 0)
		w.b.WriteString("\n")
		w.walkChildren(n)
		w.orderedStack = w.orderedStack[:len(w.orderedStack)-1]
		w.orderedCounts = w.orderedCounts[:len(w.orderedCounts)-1]
		w.b.WriteString("\n")
	case atom.Li:
		indent := strings.Repeat("  ", max(0, len(w.orderedStack)-1))
		if len(w.orderedStack) > 0 && w.orderedStack[len(w.orderedStack)-1] {
			w.orderedCounts[len(w.orderedCounts)-1]++
			w.b.WriteString("\n" + indent + itoa(w.orderedCounts[len(w.orderedCounts)-1]) + ". ")
		} else {
			w.b.WriteString("\n" + indent + "- ")
		}
		w.walkChildren(n)
	case atom.Table:
		renderTable(&w.b, n)
	default:
		w.walkChildren(n)
	}
}

func (w *walker) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return b.String()
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
