package inspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/elements"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FprintHTML renders the payloads of c as an HTML table, one row per
// payload with its position and its label.
func (p *Printer[T]) FprintHTML(w io.Writer, c elements.Container[T]) error {
	if elements.IsAbsent(c) {
		return fmt.Errorf("%w: container is nil", elements.ErrAbsentInput)
	}
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "class", Val: "elements"}}
	i := 0
	c.ForEach(func(item T) bool {
		row := element(atom.Tr)
		row.AppendChild(cell(strconv.Itoa(i)))
		row.AppendChild(cell(p.label(item)))
		table.AppendChild(row)
		i++
		return true
	})
	tracer().Debugf("inspect: rendered %d rows", i)
	return html.Render(w, table)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func cell(text string) *html.Node {
	td := element(atom.Td)
	td.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return td
}
