package htmlconv

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/voidlight/voidlight-markitdown/internal/convert/mdtable"
)

// renderTable flattens an HTML <table> into header/body rows and renders
// them through mdtable, ignoring rowspan/colspan (Markdown tables have no
// equivalent).
func renderTable(b *strings.Builder, table *html.Node) {
	var headers []string
	var rows [][]string

	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Thead:
				if row := firstRow(c); row != nil && headers == nil {
					headers = cellsOf(row)
				}
			case atom.Tbody, atom.Tfoot:
				walkRows(c)
			case atom.Tr:
				cells := cellsOf(c)
				if headers == nil && hasOnly(c, atom.Th) {
					headers = cells
					continue
				}
				rows = append(rows, cells)
			}
		}
	}
	walkRows(table)

	b.WriteString("\n\n")
	b.WriteString(mdtable.Render(headers, rows))
	b.WriteString("\n")
}

func firstRow(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Tr {
			return c
		}
	}
	return nil
}

func cellsOf(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, strings.TrimSpace(textContent(c)))
		}
	}
	return cells
}

func hasOnly(tr *html.Node, a atom.Atom) bool {
	found := false
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom != a {
			return false
		}
		found = true
	}
	return found
}
