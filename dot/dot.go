package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/digraph/core"
)

// ErrNilDigraph is returned if a nil digraph is passed.
var ErrNilDigraph = errors.New("dot: digraph is nil")

// Marshal renders d as a Graphviz DOT document. Weighted digraphs get
// their arc weights as edge labels.
func Marshal(d core.Digraph) (string, error) {
	if d == nil {
		return "", ErrNilDigraph
	}

	var buf bytes.Buffer
	buf.WriteString("digraph {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle];\n\n")

	for v := 0; v < d.Order(); v++ {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	buf.WriteString("\n")

	switch l := d.(type) {
	case core.WeightedArcLister:
		for _, a := range l.ArcsWeighted() {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", a.Tail, a.Head, a.Weight)
		}
	case core.ArcLister:
		for _, a := range l.Arcs() {
			fmt.Fprintf(&buf, "  %d -> %d;\n", a[0], a[1])
		}
	default:
		for u := 0; u < d.Order(); u++ {
			for _, v := range d.OutNeighbors(u) {
				fmt.Fprintf(&buf, "  %d -> %d;\n", u, v)
			}
		}
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

// RenderSVG lays out a DOT document with the embedded Graphviz engine
// and returns the SVG bytes.
func RenderSVG(ctx context.Context, src string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("dot: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("dot: parse: %w", err)
	}
	defer func() { _ = g.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("dot: render: %w", err)
	}

	return buf.Bytes(), nil
}
