// Package tui is the interactive terminal browser for the catalog. It
// renders the merged exercise list with fuzzy filtering, a detail pane,
// and a status bar fed by browser state changes.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcatalog/pkg/browser"
	"fitcatalog/pkg/catalog"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"}).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	detailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	detailLabelStyle = lipgloss.NewStyle().Bold(true)
)

type item struct {
	ex catalog.Exercise
}

func (i item) Title() string { return i.ex.Name }

func (i item) Description() string {
	parts := []string{i.ex.Muscle, string(i.ex.Difficulty)}
	if i.ex.Equipment != "" {
		parts = append(parts, i.ex.Equipment)
	}
	return strings.Join(parts, " · ")
}

func (i item) FilterValue() string {
	return i.ex.Name + " " + i.ex.Muscle + " " + i.ex.Equipment
}

type snapshotMsg browser.Snapshot

type keyMap struct {
	Refresh key.Binding
	Open    key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// Model is the bubbletea model for the catalog browser.
type Model struct {
	browser *browser.Browser
	sub     <-chan browser.Snapshot

	list    list.Model
	spinner spinner.Model
	status  browser.Snapshot
	detail  *catalog.Exercise

	width  int
	height int
}

func NewModel(b *browser.Browser) Model {
	snap := b.Snapshot()

	l := list.New(toItems(snap.Exercises), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Exercise Catalog"
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Refresh, keys.Open}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		browser: b,
		sub:     b.Subscribe(),
		list:    l,
		spinner: sp,
		status:  snap,
	}
}

func toItems(exercises []catalog.Exercise) []list.Item {
	items := make([]list.Item, len(exercises))
	for i, ex := range exercises {
		items[i] = item{ex: ex}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSnapshot(), m.spinner.Tick)
}

func (m Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.sub
		if !ok {
			// Browser closed; stop re-arming.
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (m Model) refreshCmd() tea.Cmd {
	b := m.browser
	return func() tea.Msg {
		// Progress arrives through the subscription channel.
		_ = b.Refresh(context.Background(), false)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case snapshotMsg:
		m.status = browser.Snapshot(msg)
		cmd := m.list.SetItems(toItems(m.status.Exercises))
		return m, tea.Batch(cmd, m.waitForSnapshot())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.String() == "q", msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
		case key.Matches(msg, keys.Open):
			if m.detail == nil {
				if sel, ok := m.list.SelectedItem().(item); ok {
					ex := sel.ex
					m.detail = &ex
				}
				return m, nil
			}
		case key.Matches(msg, keys.Refresh):
			return m, m.refreshCmd()
		}
	}

	if m.detail != nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.detail != nil {
		return m.detailView()
	}
	return m.list.View() + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	var parts []string

	if m.status.Loading {
		parts = append(parts, m.spinner.View()+"syncing")
	} else {
		parts = append(parts, m.status.State.String())
	}

	parts = append(parts, fmt.Sprintf("%d exercises", len(m.status.Exercises)))

	if !m.status.LastSync.IsZero() {
		parts = append(parts, "synced "+m.status.LastSync.Format("15:04:05"))
	}
	if m.status.Err != nil {
		parts = append(parts, errorStyle.Render("offline data shown"))
	}

	return statusBarStyle.Width(m.width).Render(strings.Join(parts, " │ "))
}

func (m Model) detailView() string {
	ex := *m.detail

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(ex.Name) + "\n\n")
	writeField(&b, "Muscle", ex.Muscle)
	writeField(&b, "Difficulty", string(ex.Difficulty))
	writeField(&b, "Equipment", ex.Equipment)
	if ex.Calories > 0 {
		writeField(&b, "Calories", fmt.Sprintf("%d kcal", ex.Calories))
	}
	writeField(&b, "Video", ex.Video)

	if ex.Overview != "" {
		b.WriteString("\n" + ex.Overview + "\n")
	}

	if len(ex.Steps) > 0 {
		b.WriteString("\n" + detailLabelStyle.Render("Steps") + "\n")
		for i, step := range ex.Steps {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
	}

	if len(ex.Benefits) > 0 {
		b.WriteString("\n" + detailLabelStyle.Render("Benefits") + "\n")
		for _, benefit := range ex.Benefits {
			b.WriteString("• " + benefit + "\n")
		}
	}

	b.WriteString("\nesc to go back")

	panel := detailBorderStyle
	if m.width > 4 {
		panel = panel.Width(m.width - 4)
	}
	return panel.Render(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(detailLabelStyle.Render(label+": ") + value + "\n")
}

// Run starts the interactive browser and blocks until exit.
func Run(b *browser.Browser) error {
	p := tea.NewProgram(NewModel(b), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
