package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
)

// speciesItem represents one species in the selector list
type speciesItem struct {
	name     string
	types    string
	total    int
	dexNum   int
	selected bool
}

func (i speciesItem) Title() string {
	var checkbox string
	if i.selected {
		checkbox = Success.Render("[✓] ")
	} else {
		checkbox = Dim.Render("[ ] ")
	}
	return checkbox + i.name
}

func (i speciesItem) Description() string {
	return fmt.Sprintf("%s %s",
		Dim.Render(fmt.Sprintf("#%03d · %s ·", i.dexNum, i.types)),
		Dim.Render(fmt.Sprintf("total %d", i.total)))
}

func (i speciesItem) FilterValue() string { return i.name }

// speciesSelectorModel is the Bubble Tea model for the team picker
type speciesSelectorModel struct {
	textInput textinput.Model
	list      list.Model
	all       []speciesItem

	filteredItems []list.Item
	selected      map[string]bool
	maxPick       int
	query         string
	quitting      bool
	confirmed     bool
	width         int
	height        int
}

// NewSpeciesSelector creates an interactive picker over the species table.
// maxPick caps the number of selectable species (a team holds at most 6).
func NewSpeciesSelector(table *dex.Table, maxPick int) *speciesSelectorModel {
	ti := textinput.New()
	ti.Placeholder = "Filter species..."
	ti.Focus()
	ti.CharLimit = 64
	ti.SetWidth(40)

	all := make([]speciesItem, 0, table.Len())
	for _, sp := range table.All() {
		all = append(all, speciesItem{
			name:   sp.Name,
			types:  sp.TypeString(),
			total:  sp.Stats.Total(),
			dexNum: sp.Dex,
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(3)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Build Your Team"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false) // We handle our own filtering
	l.SetShowHelp(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)

	m := &speciesSelectorModel{
		textInput: ti,
		list:      l,
		all:       all,
		selected:  make(map[string]bool),
		maxPick:   maxPick,
		width:     80,
		height:    24,
	}
	m.applyFilter("")
	return m
}

// Init initializes the model
func (m *speciesSelectorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *speciesSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.textInput.Focused() {
			switch msg.String() {
			case "ctrl+c", "esc":
				m.quitting = true
				return m, tea.Quit
			case "enter", "down", "up":
				if len(m.filteredItems) > 0 {
					m.textInput.Blur()
					var cmd tea.Cmd
					m.list, cmd = m.list.Update(msg)
					return m, cmd
				}
				return m, nil
			default:
				var cmd tea.Cmd
				m.textInput, cmd = m.textInput.Update(msg)
				if q := m.textInput.Value(); q != m.query {
					m.query = q
					m.applyFilter(q)
				}
				return m, cmd
			}
		}

		// List is focused
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "s", " ":
			if i, ok := m.list.SelectedItem().(speciesItem); ok {
				if !m.selected[i.name] && m.pickedCount() >= m.maxPick {
					return m, nil
				}
				m.selected[i.name] = !m.selected[i.name]
				m.refreshSelection()
			}
			return m, nil
		case "/", "i":
			m.textInput.Focus()
			return m, textinput.Blink
		default:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model
func (m *speciesSelectorModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(1, 0)
	b.WriteString(titleStyle.Render("Species Selector"))
	b.WriteString("\n\n")

	b.WriteString(Dim.Render("Filter: "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.list.View())
	b.WriteString("\n\n")

	if n := m.pickedCount(); n > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Success.Render("Selected:"),
			Highlight.Render(fmt.Sprintf("%d/%d", n, m.maxPick))))
	}

	helpStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	if m.textInput.Focused() {
		b.WriteString(helpStyle.Render("↑/↓: move to list · esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("s: select · ↑/↓: navigate · enter: confirm · /: filter · esc: cancel"))
	}

	return tea.NewView(b.String())
}

func (m *speciesSelectorModel) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	items := make([]list.Item, 0, len(m.all))
	for _, it := range m.all {
		if query != "" && !strings.Contains(it.name, query) && !strings.Contains(it.types, query) {
			continue
		}
		it.selected = m.selected[it.name]
		items = append(items, it)
	}
	m.filteredItems = items
	m.list.SetItems(items)
}

func (m *speciesSelectorModel) refreshSelection() {
	for i, item := range m.filteredItems {
		if si, ok := item.(speciesItem); ok {
			si.selected = m.selected[si.name]
			m.filteredItems[i] = si
		}
	}
	m.list.SetItems(m.filteredItems)
}

func (m *speciesSelectorModel) pickedCount() int {
	n := 0
	for _, sel := range m.selected {
		if sel {
			n++
		}
	}
	return n
}

// Picked returns the selected species names.
func (m *speciesSelectorModel) Picked() []string {
	var names []string
	for _, it := range m.all {
		if m.selected[it.name] {
			names = append(names, it.name)
		}
	}
	return names
}

// RunSpeciesSelector runs the picker and returns the chosen names.
// Cancelling returns apperr.ErrCancelled so the CLI can exit 0.
func RunSpeciesSelector(table *dex.Table, maxPick int) ([]string, error) {
	p := tea.NewProgram(NewSpeciesSelector(table, maxPick))
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	model := m.(*speciesSelectorModel)
	if !model.confirmed {
		return nil, apperr.ErrCancelled
	}
	return model.Picked(), nil
}
