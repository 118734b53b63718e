package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-text/inkwell/buffer"
)

// Model is a Bubble Tea component rendering an inkwell buffer as an input
// field with embed chips and a trigger suggestion popup.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused  bool
	viewport viewport.Model

	popup popupState

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg: cfg,
		buf: buffer.New(cfg.Text, buffer.Options{
			Triggers:       cfg.Triggers,
			MaxMatchLength: cfg.MaxMatchLength,
			OnFinish:       cfg.OnFinish,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.buf.Version()
	m.refreshPopup()
	m.rebuildContent()
	return m
}

// Buffer exposes the underlying model; hosts may mutate it directly and
// the component resyncs on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focused() bool { return m.focused }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		// Hosts may have mutated the buffer outside of key handling.
		m.syncFromBuffer()
		return m, nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if pop, ok := m.popupView(base); ok {
		return pop
	}
	return base
}

func (m *Model) syncFromBuffer() {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.refreshPopup()
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	_, row := m.caretScreenPos()
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
