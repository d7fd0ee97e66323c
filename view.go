package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var body []string
	switch m.mode {
	case ModeArchive:
		body = m.archiveLines()
	case ModeDetail:
		body = m.detailLines()
	case ModeLock:
		body = m.lockLines()
	case ModeConfirm:
		switch m.confirmReturn {
		case ModeArchive:
			body = m.archiveLines()
		case ModeDetail:
			body = m.detailLines()
		case ModeLock:
			body = m.lockLines()
		default:
			body = m.canvasLines()
		}
	default:
		body = m.canvasLines()
	}

	rows := m.height - statusLines
	if rows < 1 {
		rows = 1
	}
	if len(body) > rows {
		body = body[:rows]
	}
	for len(body) < rows {
		body = append(body, "")
	}

	var result strings.Builder
	result.WriteString(strings.Join(body, "\n"))
	result.WriteString("\n")
	result.WriteString(m.promptLine())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

// canvasLines renders the live frame, including the stroke being drawn.
func (m model) canvasLines() []string {
	if m.mapper == nil || m.raster == nil {
		return nil
	}
	img := m.raster.Render(BuildDrawList(m.scene, m.recorder, m.color(), m.config.CanvasSize()))
	return renderPreview(img, m.mapper.Rendered)
}

func (m model) promptLine() string {
	if m.currentPrompt == "" {
		return dimStyle.Render("g for a journaling prompt")
	}
	return "Prompt: " + m.currentPrompt
}

func (m model) lockLines() []string {
	field := func(label, value string, focused bool) string {
		if focused {
			return fmt.Sprintf("  %s %s%s", label, value, cursorStyle.Render(" "))
		}
		return fmt.Sprintf("  %s %s", label, value)
	}
	lines := []string{
		titleStyle.Render("Lock your capsule"),
		"",
		field("Unlock date (YYYY-MM-DD):", m.lockDate, m.lockField == LockFieldDate),
		field("Tags (comma separated):  ", m.lockTags, m.lockField == LockFieldTags),
		"",
	}
	if m.snapshot == "" {
		lines = append(lines, dimStyle.Render("  No snapshot captured."))
	} else {
		lines = append(lines, dimStyle.Render("  Snapshot captured."))
	}
	return lines
}

func (m model) archiveLines() []string {
	lines := []string{titleStyle.Render("Archive"), ""}
	if m.archiveView.Empty() {
		return append(lines, "  No entries found.")
	}

	index := 0
	section := func(title string, entries []LockedEntry, locked bool) {
		lines = append(lines, titleStyle.Render(title))
		if len(entries) == 0 {
			lines = append(lines, dimStyle.Render("  none"))
		}
		for _, e := range entries {
			var card string
			if locked {
				card = fmt.Sprintf("%s Locked until %s", lockGlyph, FormatDate(e.LockedUntil))
			} else {
				card = fmt.Sprintf("Created on %s", FormatDate(e.CreatedAt))
			}
			if len(e.Tags) > 0 {
				card += " [" + strings.Join(e.Tags, ", ") + "]"
			}
			if index == m.archiveIndex {
				lines = append(lines, cursorStyle.Render("> "+card))
			} else {
				lines = append(lines, "  "+card)
			}
			index++
		}
		lines = append(lines, "")
	}
	section("Locked Capsules", m.archiveView.Locked, true)
	section("Unlocked Capsules", m.archiveView.Unlocked, false)
	return lines
}

func (m model) detailLines() []string {
	if m.detail == nil {
		return nil
	}
	d := m.detail
	lines := []string{titleStyle.Render("Capsule " + d.ID), ""}
	if len(d.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(d.Tags, ", "))
	}
	if d.Locked {
		return append(lines,
			"Locked until: "+d.LockedUntil,
			"",
			lockGlyph+" This capsule is locked.",
		)
	}
	lines = append(lines, "Created on: "+d.CreatedOn, "Unlocked on: "+d.LockedUntil, "")

	rows := m.height - statusLines - len(lines)
	preview, err := previewDataURI(d.Image, m.width, rows)
	if err != nil {
		return append(lines, "Could not show image: "+err.Error())
	}
	return append(lines, preview...)
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeTextInput:
		status = fmt.Sprintf("Mode: TEXT | Text: %s%s | Enter=add, Esc=cancel", m.input, cursorStyle.Render(" "))
	case ModeTextEdit:
		status = fmt.Sprintf("Mode: EDIT TEXT | Text: %s%s | Enter=replace, Esc=cancel", m.input, cursorStyle.Render(" "))
	case ModeImport:
		status = fmt.Sprintf("Mode: IMPORT | Files: %s%s | comma separated, Enter=import, Esc=cancel", m.input, cursorStyle.Render(" "))
	case ModeLock:
		status = "Mode: LOCK | Tab=switch field, Enter=lock, Esc=back to editing"
	case ModeArchive:
		status = fmt.Sprintf("Mode: ARCHIVE | %d locked, %d unlocked | j/k=move, Enter=open, C=clear all, Esc=new entry",
			len(m.archiveView.Locked), len(m.archiveView.Unlocked))
	case ModeDetail:
		status = "Mode: DETAIL | s=save image, Esc=back"
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmClearCanvas:
			message = "Clear the canvas? (y/n)"
		case ConfirmClearAll:
			message = "Clear every capsule? This cannot be undone. (y/n)"
		case ConfirmQuit:
			message = "Quit Happy Capsule? (y/n)"
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		status = fmt.Sprintf("Mode: %s | Color: %s", m.modeString(), colorNames[m.selectedColor])
		if m.drag.Active() {
			status += " | Dragging"
		}
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeDrawing:
		return "DRAW"
	case ModeEditing:
		return "EDIT"
	case ModeTextInput:
		return "TEXT"
	case ModeTextEdit:
		return "EDIT TEXT"
	case ModeImport:
		return "IMPORT"
	case ModeLock:
		return "LOCK"
	case ModeArchive:
		return "ARCHIVE"
	case ModeDetail:
		return "DETAIL"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Happy Capsule Help",
		"==================",
		"",
		"Canvas:",
		"-------",
		"  d                Draw mode: drag with the mouse to draw a stroke",
		"  e                Edit mode: drag images and text around",
		"                   Double-click a text to replace its content",
		"  c / C            Next / previous color",
		"  1-8              Pick a color",
		"  t                Add text at the last pointer position",
		"  p                Paste clipboard text",
		"  i                Import images (comma separated paths)",
		"  x                Clear the canvas",
		"  s                Save the canvas as PNG",
		"  g                Show a journaling prompt",
		"",
		"Capsules:",
		"---------",
		"  l                Lock the canvas into a capsule",
		"  a                Open the archive",
		"",
		"Lock Form:",
		"----------",
		"  Tab              Switch between date and tags",
		"  Enter            Lock the capsule",
		"  Esc              Back to editing, keeps a draft of the snapshot",
		"",
		"Archive:",
		"--------",
		"  j/k              Move selection (J/K moves faster)",
		"  g/G              First / last entry",
		"  Enter            Open the selected capsule",
		"  C                Clear every capsule",
		"  r                Reload",
		"  Esc              Back to the canvas",
		"",
		"General:",
		"--------",
		"  Esc              Clear messages",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
		"",
		"Press any key to close",
	}
	if m.height > 0 && len(helpLines) > m.height {
		helpLines = helpLines[:m.height]
	}
	return strings.Join(helpLines, "\n")
}
