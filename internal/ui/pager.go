package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// chromeHeight is the number of rows used by the title and status lines
const chromeHeight = 4

// pagerModel shows search results in a scrollable viewport
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{
		title:   title,
		content: strings.TrimSuffix(content, "\n"),
	}
}

// Init implements tea.Model
func (m pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m pagerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	width := m.viewport.Width
	divider := styles.Divider.Render(strings.Repeat("─", width))

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine renders the scroll position and key help
func (m pagerModel) statusLine() string {
	status := fmt.Sprintf("%d lines • %3.f%%", m.viewport.TotalLineCount(), m.viewport.ScrollPercent()*100)
	help := styles.Dim.Render("↑/↓ scroll • g/G top/bottom • q quit")
	return styles.Status.Render(status) + "  " + help
}

// getTTY returns the terminal to draw on. When stdout is captured the
// controlling terminal is used instead.
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return os.Stdin, os.Stdout, func() {}
	}

	var closers []func()

	out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		out = os.Stderr
	} else {
		closers = append(closers, func() { out.Close() })
	}

	in, err = os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		in = os.Stdin
	} else {
		closers = append(closers, func() { in.Close() })
	}

	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

	return in, out, func() {
		for _, c := range closers {
			c()
		}
	}
}

// Page shows content in a full-screen scrollable viewer until the user quits.
func Page(title, content string) error {
	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()

	p := tea.NewProgram(newPagerModel(title, content),
		tea.WithAltScreen(),
		tea.WithOutput(ttyOut),
		tea.WithInput(ttyIn),
	)
	_, err := p.Run()
	return err
}
