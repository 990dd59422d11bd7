package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/digraph/core"
)

// tomlArc is one [[arc]] table of a TOML digraph file. A missing
// weight defaults to 1.
type tomlArc struct {
	Tail   int    `toml:"tail"`
	Head   int    `toml:"head"`
	Weight *int64 `toml:"weight"`
}

// tomlDigraph is the schema of a TOML digraph file.
type tomlDigraph struct {
	Order int       `toml:"order"`
	Arcs  []tomlArc `toml:"arc"`
}

// loadDigraph reads a digraph description from path. Files ending in
// .toml use the TOML schema (order, [[arc]] tables); anything else is
// parsed as arc-list text, one "tail head [weight]" triple per line,
// with blank lines and '#' comments ignored. The order of a text
// digraph is inferred as the largest mentioned vertex plus one.
func loadDigraph(path string) (*core.AdjacencyListWeighted, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return loadTOML(path)
	}

	return loadArcList(path)
}

func loadTOML(path string) (*core.AdjacencyListWeighted, error) {
	var spec tomlDigraph
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if spec.Order < 0 {
		return nil, fmt.Errorf("parse %s: negative order %d", path, spec.Order)
	}

	d := core.NewAdjacencyListWeighted(spec.Order)
	for i, a := range spec.Arcs {
		w := int64(1)
		if a.Weight != nil {
			w = *a.Weight
		}
		if err := d.AddArcWeighted(a.Tail, a.Head, w); err != nil {
			return nil, fmt.Errorf("parse %s: arc #%d: %w", path, i+1, err)
		}
	}

	return d, nil
}

func loadArcList(path string) (*core.AdjacencyListWeighted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer f.Close()

	var (
		arcs  []core.WeightedArc
		order int
	)
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("parse %s:%d: want \"tail head [weight]\", got %q", path, line, text)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parse %s:%d: tail: %w", path, line, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s:%d: head: %w", path, line, err)
		}
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("parse %s:%d: negative vertex in %q", path, line, text)
		}

		w := int64(1)
		if len(fields) == 3 {
			if w, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
				return nil, fmt.Errorf("parse %s:%d: weight: %w", path, line, err)
			}
		}

		arcs = append(arcs, core.WeightedArc{Tail: u, Head: v, Weight: w})
		if u >= order {
			order = u + 1
		}
		if v >= order {
			order = v + 1
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	d := core.NewAdjacencyListWeighted(order)
	for _, a := range arcs {
		// endpoints are within [0, order) by construction
		_ = d.AddArcWeighted(a.Tail, a.Head, a.Weight)
	}

	return d, nil
}

// parseSources converts positional vertex arguments to indices.
func parseSources(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", a, err)
		}
		out[i] = v
	}

	return out, nil
}
