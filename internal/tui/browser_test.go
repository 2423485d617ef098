package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mimiqdev/pokescript/internal/catalog"
	"github.com/mimiqdev/pokescript/internal/colorscripts"
	"github.com/mimiqdev/pokescript/internal/pokemon"
	"github.com/mimiqdev/pokescript/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrowser(t *testing.T) BrowserModel {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	sel := selector.New(cat, selector.WithRand(rand.New(rand.NewPCG(1, 1))))
	return NewBrowser(cat, colorscripts.Bundled(), sel, false)
}

func press(m BrowserModel, keys ...string) BrowserModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(BrowserModel)
	}
	return m
}

func TestBrowserNavigation(t *testing.T) {
	m := newTestBrowser(t)

	asset, ok := m.Asset()
	require.True(t, ok)
	assert.Equal(t, pokemon.ResolvedAsset{DisplayName: "bulbasaur"}, asset)

	m = press(m, "down", "j", "j")
	asset, _ = m.Asset()
	assert.Equal(t, "charmander", asset.DisplayName)

	m = press(m, "up", "g")
	asset, _ = m.Asset()
	assert.Equal(t, "bulbasaur", asset.DisplayName)

	m = press(m, "G")
	asset, _ = m.Asset()
	assert.Equal(t, "calyrex", asset.DisplayName)
}

func TestBrowserToggles(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "s", "b")

	asset, ok := m.Asset()
	require.True(t, ok)
	assert.True(t, asset.Shiny)
	assert.True(t, asset.Large)
	assert.Equal(t, "large/shiny/bulbasaur", asset.Key())
}

func TestBrowserSearchAndForms(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "/", "r", "a", "i", "c", "h", "u", "enter")

	require.Len(t, m.filtered, 1)
	asset, _ := m.Asset()
	assert.Equal(t, "raichu", asset.DisplayName)

	m = press(m, "f")
	asset, _ = m.Asset()
	assert.Equal(t, "raichu-alola", asset.DisplayName)

	// raichu has a single alternate form, so the next press wraps around.
	m = press(m, "f")
	asset, _ = m.Asset()
	assert.Equal(t, "raichu", asset.DisplayName)

	m = press(m, "c")
	assert.Len(t, m.filtered, 898)
}

func TestBrowserSearchCancel(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "/", "z", "z", "esc")

	assert.False(t, m.searching)
	assert.Len(t, m.filtered, 898)
}

func TestBrowserNoMatch(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "/", "x", "y", "z", "q", "enter")

	assert.Empty(t, m.filtered)
	_, ok := m.Asset()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No pokemon match")
}

func TestBrowserRandomStaysInFilter(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "/", "s", "a", "u", "r", "enter")

	for range 20 {
		m = press(m, "r")
		asset, ok := m.Asset()
		require.True(t, ok)
		assert.True(t, strings.Contains(asset.DisplayName, "saur"), asset.DisplayName)
	}
}

func TestBrowserView(t *testing.T) {
	m := newTestBrowser(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(BrowserModel)
	m = press(m, "/", "p", "i", "k", "a", "c", "h", "u", "enter")

	view := m.View()
	assert.Contains(t, view, "pikachu")
	assert.Contains(t, view, "small/regular/pikachu")
	assert.Contains(t, view, "#025 • gen 1")

	// mewtwo is in the catalog but has no bundled sprite.
	require.False(t, colorscripts.Bundled().Has(pokemon.ResolvedAsset{DisplayName: "mewtwo"}))
	m = press(m, "/", "m", "e", "w", "t", "w", "o", "enter")
	assert.Equal(t, "mewtwo", m.searchTerm)
	assert.Contains(t, m.View(), "not found at small/regular/mewtwo")
}

func TestBrowserNewSearchReplacesTerm(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "/", "p", "i", "k", "a", "enter")
	require.Equal(t, "pika", m.searchTerm)

	m = press(m, "/")
	assert.Empty(t, m.searchInput.Value())

	m = press(m, "e", "e", "v", "e", "e", "enter")
	assert.Equal(t, "eevee", m.searchTerm)
	asset, ok := m.Asset()
	require.True(t, ok)
	assert.Equal(t, "eevee", asset.DisplayName)
}

func TestBrowserSearchEscRestoresTerm(t *testing.T) {
	m := newTestBrowser(t)
	m = press(m, "/", "s", "a", "u", "r", "enter")
	m = press(m, "/", "z", "esc")

	assert.Equal(t, "saur", m.searchTerm)
	assert.Equal(t, "saur", m.searchInput.Value())
	assert.Len(t, m.filtered, 3)
}

func TestBrowserMarksMissingSprites(t *testing.T) {
	m := newTestBrowser(t)
	assert.True(t, m.hasSprite(m.entries[0]))  // bulbasaur
	assert.False(t, m.hasSprite(m.entries[1])) // ivysaur

	m = press(m, "/", "m", "e", "w", "enter")
	assert.Contains(t, m.View(), "mewtwo"+missingMark)

	m = press(m, "/", "p", "i", "k", "a", "c", "h", "u", "enter")
	assert.NotContains(t, m.View(), "pikachu"+missingMark)
}
