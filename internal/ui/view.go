package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/menuctl/internal/format/table"
	"github.com/atomicstack/menuctl/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerText = "↑/↓ move  ←/→ adjust  enter select  [/] letter  / search  esc back  ~ main  q quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLines()...)
	lines = append(lines, m.entryLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter() {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{m.statusLine()}
	if m.searching {
		bottomLines = append(bottomLines, styledLine{text: m.search.View(), raw: true})
	} else {
		bottomLines = append(bottomLines, styledLine{})
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) headerLines() []styledLine {
	lines := make([]styledLine, 0, 2)
	if title, err := m.entries.Title(m.width); err == nil && title != "" {
		lines = append(lines, styledLine{text: title, style: styles.Header})
	}
	if coreTitle, err := m.entries.CoreTitle(m.width); err == nil {
		lines = append(lines, styledLine{text: coreTitle, style: styles.CoreTitle})
	}
	return lines
}

// entryLines renders the rows inside the viewport, label on the left and
// value on the right.
func (m *Model) entryLines() []styledLine {
	size := m.entries.Size()
	if size == 0 {
		if m.awaitingListing() {
			return []styledLine{{text: "Loading…", style: styles.Loading}}
		}
		return []styledLine{{text: "(no entries)", style: styles.Info}}
	}
	start := m.nav.Offset()
	end := size
	if maxItems := m.maxVisibleItems(); maxItems > 0 && start+maxItems < end {
		end = start + maxItems
	}
	if start >= end {
		start = 0
	}
	m.entries.SetStart(start)

	visible := make([]menu.Entry, 0, end-start)
	rows := make([][]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		entry := m.cache.entry(m.entries, idx)
		visible = append(visible, entry)
		label := strings.Repeat(" ", entry.Spacing) + entry.Label
		rows = append(rows, []string{label, entry.Value})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})

	cursor, _ := m.nav.Selection()
	lines := make([]styledLine, 0, len(visible))
	for i, entry := range visible {
		lines = append(lines, m.buildItemLine(formatted[i], entry, start+i == cursor))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a menu entry. The text is
// padded so the selected entry's background spans the full width.
func (m *Model) buildItemLine(text string, entry menu.Entry, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if entry.Type == menu.TypeDirectory && styles.Directory != nil {
		lineStyle = styles.Directory
	}
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + text
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.backendLastErr != "":
		return styledLine{text: fmt.Sprintf("Watcher: %s", m.backendLastErr), style: styles.Error}
	}
	return styledLine{}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.cache.invalidate()
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: status + search prompt
	used += len(m.headerLines())
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter() {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: table.Fit("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: table.Fit("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = table.Fit(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
