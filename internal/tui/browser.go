package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mimiqdev/pokescript/internal/catalog"
	"github.com/mimiqdev/pokescript/internal/colorscripts"
	"github.com/mimiqdev/pokescript/internal/generation"
	"github.com/mimiqdev/pokescript/internal/pokemon"
	"github.com/mimiqdev/pokescript/internal/render"
	"github.com/mimiqdev/pokescript/internal/selector"
)

const listWidth = 28

// listEntry is a catalog entry with its national dex id.
type listEntry struct {
	id    int
	entry pokemon.Entry
}

// Sprites is the sprite store the browser reads from.
type Sprites interface {
	render.Source
	Has(asset pokemon.ResolvedAsset) bool
}

// BrowserModel is the Bubble Tea model for browsing the catalog.
type BrowserModel struct {
	selector *selector.Selector
	sprites  Sprites

	// List navigation
	entries  []listEntry
	filtered []listEntry
	cursor   int
	offset   int

	// Sprite options
	form  int // 0 = regular, i = AlternateForms()[i-1]
	shiny bool
	large bool

	// Search
	searchInput textinput.Model
	searching   bool
	searchTerm  string

	width  int
	height int
}

// NewBrowser creates a new browser model.
func NewBrowser(cat *catalog.Catalog, sprites Sprites, sel *selector.Selector, large bool) BrowserModel {
	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 30
	si.Width = listWidth - 4

	var entries []listEntry
	id := 0
	for e := range cat.Entries() {
		id++
		entries = append(entries, listEntry{id: id, entry: e})
	}

	return BrowserModel{
		selector:    sel,
		sprites:     sprites,
		entries:     entries,
		filtered:    entries,
		large:       large,
		searchInput: si,
		width:       80,
		height:      24,
	}
}

// Init initializes the model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.searchInput.Blur()
				m.searchTerm = m.searchInput.Value()
				m.applyFilter()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				m.searchInput.SetValue(m.searchTerm)
				return m, nil
			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.listHeight())
		case "pgdown":
			m.move(m.listHeight())
		case "home", "g":
			m.move(-len(m.filtered))
		case "end", "G":
			m.move(len(m.filtered))
		case "s":
			m.shiny = !m.shiny
		case "b":
			m.large = !m.large
		case "f":
			if e, ok := m.current(); ok {
				m.form = (m.form + 1) % (len(e.entry.AlternateForms()) + 1)
			}
		case "r":
			m.pickRandom()
		case "/":
			// A new search starts empty; esc brings the applied term back.
			m.searching = true
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			return m, textinput.Blink
		case "c":
			m.searchTerm = ""
			m.searchInput.SetValue("")
			m.applyFilter()
		}
	}

	return m, nil
}

// applyFilter keeps entries whose name contains the search term.
func (m *BrowserModel) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(m.searchTerm))
	if term == "" {
		m.filtered = m.entries
	} else {
		m.filtered = nil
		for _, e := range m.entries {
			if strings.Contains(e.entry.Name, term) {
				m.filtered = append(m.filtered, e)
			}
		}
	}
	m.cursor = 0
	m.offset = 0
	m.form = 0
}

// pickRandom jumps to a random entry of the current list and rolls for shiny.
func (m *BrowserModel) pickRandom() {
	if len(m.filtered) == 0 {
		return
	}
	names := make([]string, len(m.filtered))
	for i, e := range m.filtered {
		names[i] = e.entry.Name
	}
	name, _, err := m.selector.RandomByNames(strings.Join(names, ","))
	if err != nil {
		return
	}
	for i, e := range m.filtered {
		if e.entry.Name == name {
			m.cursor = i
			break
		}
	}
	m.form = 0
	m.shiny = m.selector.RollShiny(false)
	m.clampOffset()
}

func (m *BrowserModel) move(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.filtered)-1, m.cursor+delta))
	m.form = 0
	m.clampOffset()
}

func (m *BrowserModel) clampOffset() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m BrowserModel) listHeight() int {
	// border, search line, count line and help line
	return max(1, m.height-4)
}

func (m BrowserModel) current() (listEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return listEntry{}, false
	}
	return m.filtered[m.cursor], true
}

// Asset returns the sprite currently selected, if any.
func (m BrowserModel) Asset() (pokemon.ResolvedAsset, bool) {
	e, ok := m.current()
	if !ok {
		return pokemon.ResolvedAsset{}, false
	}
	form := ""
	if m.form > 0 {
		form = e.entry.AlternateForms()[m.form-1]
	}
	name, err := m.selector.ResolveName(e.entry.Name, form)
	if err != nil {
		return pokemon.ResolvedAsset{}, false
	}
	return pokemon.ResolvedAsset{DisplayName: name, Shiny: m.shiny, Large: m.large}, true
}

// View renders the browser.
func (m BrowserModel) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderSprite())
	help := HelpStyle.Render("↑/↓ move • / search • c clear • s shiny • b big • f form • r random • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m BrowserModel) renderList() string {
	var b strings.Builder

	if m.searching {
		b.WriteString(SearchBoxStyle.Render(m.searchInput.View()))
	} else if m.searchTerm != "" {
		b.WriteString(SearchBoxStyle.Render("/" + m.searchTerm))
	} else {
		b.WriteString(HelpStyle.Render("/ to search"))
	}
	b.WriteString("\n")
	b.WriteString(CountStyle.Render(fmt.Sprintf("%d/%d", len(m.filtered), len(m.entries))))
	b.WriteString("\n")

	end := min(len(m.filtered), m.offset+m.listHeight()-2)
	for i := m.offset; i < end; i++ {
		e := m.filtered[i]
		label := ListNumberStyle.Render(fmt.Sprintf("%03d ", e.id)) + e.entry.Name
		if !m.hasSprite(e) {
			label += ListNumberStyle.Render(missingMark)
		}
		if i == m.cursor {
			b.WriteString(ListItemActiveStyle.Render(label))
		} else {
			b.WriteString(ListItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	return ListStyle.Width(listWidth).Height(max(1, m.height-2)).Render(b.String())
}

// missingMark flags list entries with no sprite in the store.
const missingMark = " ·"

// hasSprite reports whether the store holds the regular form of e in the
// current size and variant.
func (m BrowserModel) hasSprite(e listEntry) bool {
	return m.sprites.Has(pokemon.ResolvedAsset{DisplayName: e.entry.Name, Shiny: m.shiny, Large: m.large})
}

func (m BrowserModel) renderSprite() string {
	paneWidth := max(10, m.width-listWidth-4)
	paneHeight := max(3, m.height-2)

	asset, ok := m.Asset()
	if !ok {
		return lipgloss.Place(paneWidth, paneHeight, lipgloss.Center, lipgloss.Center, HelpStyle.Render("No pokemon match"))
	}

	title := TitleStyle.Render(asset.DisplayName)
	if asset.Shiny {
		title += " " + ShinyStyle.Render("✦ shiny")
	}

	sprite, err := m.sprites.Get(asset)
	if err != nil {
		content := lipgloss.JoinVertical(lipgloss.Center, title, "", ErrorStyle.Render(err.Error()))
		return lipgloss.Place(paneWidth, paneHeight, lipgloss.Center, lipgloss.Center, content)
	}

	w, h := colorscripts.Dimensions(sprite)
	info := HelpStyle.Render(fmt.Sprintf("%s • %dx%d", asset.Key(), w, h))
	if e, ok := m.current(); ok {
		if g, err := generation.Of(e.id); err == nil {
			info = HelpStyle.Render(fmt.Sprintf("#%03d • gen %d • ", e.id, g.Generation)) + info
		}
		if alts := e.entry.AlternateForms(); len(alts) > 0 {
			info += "\n" + FormStyle.Render("forms: regular, "+strings.Join(alts, ", "))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", strings.TrimRight(sprite, "\n"), "", info)
	return lipgloss.Place(paneWidth, paneHeight, lipgloss.Center, lipgloss.Center, content)
}
