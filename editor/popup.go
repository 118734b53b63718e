package editor

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	graphemeutil "github.com/inkwell-text/inkwell/internal/grapheme"
)

// popupView composites the suggestion popup over the base field view,
// anchored under the caret and clamped to the viewport.
func (m Model) popupView(base string) (string, bool) {
	if !m.popup.visible || len(m.popup.items) == 0 {
		return "", false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return "", false
	}

	items := m.popup.items
	if len(items) > m.cfg.PopupMaxVisible {
		items = items[:m.cfg.PopupMaxVisible]
	}

	widthCap := minInt(m.cfg.PopupMaxWidth, viewportWidth)
	width := 0
	for _, it := range items {
		if w := graphemeutil.Width(popupRowText(it)); w > width {
			width = w
		}
	}
	if width <= 0 {
		return "", false
	}
	if width > widthCap {
		width = widthCap
	}

	rows := make([]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, m.renderPopupRow(it, i == m.popup.selected, width))
	}

	anchorX, anchorY := m.caretScreenPos()
	anchorY -= m.viewport.YOffset

	// Prefer below the caret; flip above when there is no room.
	y := anchorY + 1
	if y+len(rows) > viewportHeight && anchorY-len(rows) >= 0 {
		y = anchorY - len(rows)
	}
	y = clampInt(y, 0, maxInt(viewportHeight-len(rows), 0))
	x := clampInt(anchorX, 0, maxInt(viewportWidth-width, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return overlay.Composite(
		strings.Join(rows, "\n"),
		base,
		overlay.Left,
		overlay.Top,
		leftFrame+x,
		topFrame+y,
	), true
}

func (m Model) renderPopupRow(it Suggestion, selected bool, width int) string {
	base := m.cfg.Style.Popup
	if selected {
		base = m.cfg.Style.PopupSelected
	}

	text := truncateCells(popupRowText(it), width)
	used := graphemeutil.Width(text)

	var sb strings.Builder
	sb.WriteString(base.Render(text))
	if used < width {
		sb.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

func popupRowText(it Suggestion) string {
	if it.Detail == "" {
		return it.Display
	}
	return it.Display + " " + it.Detail
}

// truncateCells cuts text at a cell-width budget on grapheme boundaries.
func truncateCells(text string, width int) string {
	if graphemeutil.Width(text) <= width {
		return text
	}
	var sb strings.Builder
	used := 0
	for _, cluster := range graphemeutil.Split(text) {
		w := graphemeutil.Width(cluster)
		if used+w > width {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	return sb.String()
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
