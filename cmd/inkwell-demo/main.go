package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-text/inkwell/editor"
	"github.com/inkwell-text/inkwell/inline"
)

// chromeRows is the vertical space the demo reserves around the field:
// title, help line, and the two projection lines.
const chromeRows = 5

type user struct {
	id     string
	handle string
	name   string
}

var users = []user{
	{"u1", "alice", "Alice Liddell"},
	{"u2", "bob", "Bob Gray"},
	{"u3", "carol", "Carol Danvers"},
	{"u4", "dave", "Dave Bowman"},
}

var channels = []string{"general", "random", "releases", "incidents"}

type model struct {
	field  editor.Model
	plain  string
	markup string
}

func newModel() model {
	triggers := []inline.Trigger{
		{
			Char: '@',
			Markup: func(value any) string {
				u := value.(user)
				return fmt.Sprintf("@[%s](%s)", u.handle, u.id)
			},
		},
		{
			Char: '#',
			Markup: func(value any) string {
				return fmt.Sprintf("#[%s]", value.(string))
			},
		},
	}

	m := model{}
	m.field = editor.New(editor.Config{
		Placeholder: "Message #general",
		Triggers:    triggers,
		Suggest:     suggest,
		Clipboard:   editor.SystemClipboard{},
	})
	return m
}

func suggest(trigger rune, keyword string) []editor.Suggestion {
	keyword = strings.ToLower(keyword)
	var out []editor.Suggestion
	switch trigger {
	case '@':
		for _, u := range users {
			if strings.HasPrefix(u.handle, keyword) {
				out = append(out, editor.Suggestion{
					Value:   u,
					Display: "@" + u.handle,
					Detail:  u.name,
				})
			}
		}
	case '#':
		for _, ch := range channels {
			if strings.HasPrefix(ch, keyword) {
				out = append(out, editor.Suggestion{
					Value:   ch,
					Display: "#" + ch,
				})
			}
		}
	}
	return out
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.field = m.field.SetSize(msg.Width, msg.Height-chromeRows)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	b := m.field.Buffer()
	m.plain = b.PlainText()
	m.markup = b.MarkupText()
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("inkwell demo"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("@ mentions a user, # references a channel, ctrl+q quits"))
	sb.WriteString("\n\n")
	sb.WriteString(m.field.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("plain:  " + m.plain))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("markup: " + m.markup))
	return sb.String()
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
