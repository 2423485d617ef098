package render

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/mimiqdev/pokescript/internal/colorscripts"
	"github.com/mimiqdev/pokescript/internal/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *colorscripts.Store {
	return colorscripts.New(fstest.MapFS{
		"small/regular/pikachu":      {Data: []byte("small pikachu\n")},
		"small/shiny/pikachu":        {Data: []byte("shiny pikachu")},
		"large/regular/raichu-alola": {Data: []byte("big raichu\n")},
		"small/regular/broken":       {Data: []byte{0xc3, 0x28}},
	})
}

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		asset     pokemon.ResolvedAsset
		showTitle bool
		want      string
	}{
		{"title", pokemon.ResolvedAsset{DisplayName: "pikachu"}, true, "pikachu\nsmall pikachu\n"},
		{"no title", pokemon.ResolvedAsset{DisplayName: "pikachu"}, false, "small pikachu\n"},
		{"shiny title", pokemon.ResolvedAsset{DisplayName: "pikachu", Shiny: true}, true, "pikachu (shiny)\nshiny pikachu"},
		{"large form", pokemon.ResolvedAsset{DisplayName: "raichu-alola", Large: true}, true, "raichu-alola\nbig raichu\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(testStore(), &buf)
			require.NoError(t, r.Render(tt.asset, tt.showTitle))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := New(testStore(), &buf)

	err := r.Render(pokemon.ResolvedAsset{DisplayName: "eevee"}, true)
	assert.ErrorIs(t, err, pokemon.ErrAssetNotFound)

	err = r.Render(pokemon.ResolvedAsset{DisplayName: "broken"}, true)
	assert.ErrorIs(t, err, pokemon.ErrAssetNotUTF8)

	assert.Empty(t, buf.String())
}

func TestRenderBundled(t *testing.T) {
	var buf bytes.Buffer
	r := New(colorscripts.Bundled(), &buf)

	require.NoError(t, r.Render(pokemon.ResolvedAsset{DisplayName: "squirtle", Shiny: true}, true))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("squirtle (shiny)\n")))
}
