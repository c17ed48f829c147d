package btree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a single item; if it is nil,
// items are rendered with %v.
func (t *Tree[I, S]) ToDot(w io.Writer, label func(I) string) error {
	if label == nil {
		label = func(item I) string { return fmt.Sprintf("%v", item) }
	}
	var nodes, edges strings.Builder
	nodes.WriteString("strict digraph {\n")
	nodes.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if !t.IsEmpty() {
		id := 0
		t.dotNode(t.root, &id, &nodes, &edges, label)
	}
	if _, err := io.WriteString(w, nodes.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edges.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func (t *Tree[I, S]) dotNode(n treeNode[I, S], id *int, nodes, edges *strings.Builder, label func(I) string) int {
	*id++
	me := *id
	if n.isLeaf() {
		labels := make([]string, 0, n.size())
		for _, item := range n.(*leafNode[I, S]).items {
			labels = append(labels, dotEscape(label(item)))
		}
		fmt.Fprintf(nodes, "\t\"%d\" [label=\"%s\" %s];\n", me, strings.Join(labels, "|"), dotStyles(true))
		return me
	}
	fmt.Fprintf(nodes, "\t\"%d\" [label=%d %s];\n", me, n.size(), dotStyles(false))
	for _, child := range n.(*innerNode[I, S]).children {
		childID := t.dotNode(child, id, nodes, edges, label)
		fmt.Fprintf(edges, "\t\"%d\" -> \"%d\";\n", me, childID)
	}
	return me
}

func dotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=record,fillcolor=\"#ffffff\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

var dotEscaper = strings.NewReplacer(`"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, "<", `\<`, ">", `\>`, "\n", `\\n`)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}
