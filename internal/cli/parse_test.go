package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// writeTemp writes content to a file under t.TempDir and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadArcList(t *testing.T) {
	path := writeTemp(t, "g.txt", `
# diamond
0 1 2
0 2 3
1 3 0
2 3 1
`)

	d, err := loadDigraph(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Order())
	assert.Equal(t, 4, d.Size())
	assert.Equal(t, []core.Arc{{Head: 1, Weight: 2}, {Head: 2, Weight: 3}}, d.OutNeighborsWeighted(0))
}

func TestLoadArcList_DefaultWeight(t *testing.T) {
	path := writeTemp(t, "g.txt", "0 1\n1 2\n")

	d, err := loadDigraph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Order())
	assert.Equal(t, []core.Arc{{Head: 1, Weight: 1}}, d.OutNeighborsWeighted(0))
}

func TestLoadArcList_Malformed(t *testing.T) {
	tests := map[string]string{
		"too few fields":  "0\n",
		"too many fields": "0 1 2 3\n",
		"bad vertex":      "a b\n",
		"negative vertex": "-1 0\n",
		"bad weight":      "0 1 x\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadDigraph(writeTemp(t, "g.txt", content))
			assert.Error(t, err)
		})
	}
}

func TestLoadArcList_Missing(t *testing.T) {
	_, err := loadDigraph(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadTOML(t *testing.T) {
	path := writeTemp(t, "g.toml", `
order = 3

[[arc]]
tail = 0
head = 1
weight = 5

[[arc]]
tail = 1
head = 2
`)

	d, err := loadDigraph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Order())
	assert.Equal(t, []core.Arc{{Head: 1, Weight: 5}}, d.OutNeighborsWeighted(0))
	// missing weight defaults to 1
	assert.Equal(t, []core.Arc{{Head: 2, Weight: 1}}, d.OutNeighborsWeighted(1))
}

func TestLoadTOML_ArcOutOfRange(t *testing.T) {
	path := writeTemp(t, "g.toml", `
order = 2

[[arc]]
tail = 0
head = 5
`)

	_, err := loadDigraph(path)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestParseSources(t *testing.T) {
	got, err := parseSources([]string{"0", "7", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7, 3}, got)

	_, err = parseSources([]string{"x"})
	assert.Error(t, err)
}
