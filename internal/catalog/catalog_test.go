package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mimiqdev/pokescript/internal/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 898, c.Len())

	first, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, "bulbasaur", first.Name)

	last, err := c.At(898)
	require.NoError(t, err)
	assert.Equal(t, "calyrex", last.Name)

	pikachu, err := c.At(25)
	require.NoError(t, err)
	assert.Equal(t, "pikachu", pikachu.Name)
}

func TestLoadGenerationBoundaries(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	boundaries := map[int]string{
		151: "mew",
		152: "chikorita",
		251: "celebi",
		386: "deoxys",
		493: "arceus",
		649: "genesect",
		721: "volcanion",
		809: "melmetal",
		810: "grookey",
	}
	for id, name := range boundaries {
		e, err := c.At(id)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name, "id %d", id)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	c, err := Parse(strings.NewReader(`[{"name":"a","forms":["regular"]}]`))
	require.NoError(t, err)

	for _, id := range []int{0, 2, -1} {
		_, err := c.At(id)
		assert.ErrorIs(t, err, pokemon.ErrIndexOutOfBounds)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `[{"name":`},
		{"not an array", `{"name":"a"}`},
		{"empty name", `[{"name":"","forms":[]}]`},
		{"duplicate", `[{"name":"a","forms":[]},{"name":"a","forms":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, pokemon.ErrParse)
		})
	}
}

func TestLookup(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	raichu, ok := c.Lookup("raichu")
	require.True(t, ok)
	assert.Equal(t, []string{"alola"}, raichu.AlternateForms())

	_, ok = c.Lookup("Raichu")
	assert.False(t, ok, "lookup is case-sensitive")
	assert.False(t, c.Contains("not-a-name"))
}

func TestNamesRestartable(t *testing.T) {
	c, err := Parse(strings.NewReader(`[{"name":"a","forms":[]},{"name":"b","forms":[]},{"name":"c","forms":[]}]`))
	require.NoError(t, err)

	var first, second []string
	for n := range c.Names() {
		first = append(first, n)
	}
	for n := range c.Names() {
		second = append(second, n)
		if n == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestWriteNames(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.WriteNames(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, c.Len())

	i := 0
	for name := range c.Names() {
		assert.Equal(t, name, lines[i])
		i++
	}
}
