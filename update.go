package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusLines is the number of rows below the canvas preview.
const statusLines = 3

func (m model) Init() tea.Cmd {
	return waitForStoreChange(m.storeChanges)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case mediaLoadedMsg:
		m.handleMediaLoaded(msg)
		return m, nil

	case storeChangedMsg:
		if m.mode == ModeArchive {
			m.reloadArchive()
		}
		return m, waitForStoreChange(m.storeChanges)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// layout sizes the canvas preview to the window and rebuilds the mapper.
func (m *model) layout() {
	rows := m.height - statusLines
	if rows < 1 {
		rows = 1
	}
	size := m.config.CanvasSize()
	m.mapper = &CoordinateMapper{
		Intrinsic: size,
		Rendered:  fitRendered(size, 0, 0, m.width, rows),
	}
}

func (m *model) endGestures() {
	m.recorder.End(m.scene)
	m.drag.End()
}

func (m *model) setCanvasMode(mode Mode) {
	m.endGestures()
	m.mode = mode
	m.canvasMode = mode
}

func (m *model) isDoubleClick(x, y int) bool {
	now := m.now()
	double := !m.lastClickAt.IsZero() &&
		now.Sub(m.lastClickAt) <= doubleClickMillis*time.Millisecond &&
		x == m.lastClickX && y == m.lastClickY
	if double {
		m.lastClickAt = time.Time{}
	} else {
		m.lastClickAt = now
		m.lastClickX, m.lastClickY = x, y
	}
	return double
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != ModeDrawing && m.mode != ModeEditing {
		return nil
	}
	if m.mapper == nil {
		return nil
	}
	cx, cy := cellToClient(msg.X, msg.Y)
	inside := m.mapper.Rendered.Contains(cx, cy)
	p := m.mapper.ToCanvas(cx, cy)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return nil
		}
		m.pointer, m.hasPointer = p, true
		if m.mode == ModeDrawing {
			m.recorder.Begin(p, m.color())
			return nil
		}
		if m.isDoubleClick(msg.X, msg.Y) {
			m.drag.End()
			if id := m.scene.TextAt(p, m.raster); id >= 0 {
				m.startTextEdit(id)
			}
			return nil
		}
		m.drag.Begin(m.scene, p, m.raster)

	case tea.MouseActionMotion:
		// held-button motion arrives here too, with Button set
		if !inside {
			// leaving the canvas ends the gesture like a release
			m.endGestures()
			return nil
		}
		m.pointer, m.hasPointer = p, true
		if m.recorder.Drawing() {
			m.recorder.Move(p)
		} else if m.drag.Active() {
			m.drag.Move(m.scene, p)
		}

	case tea.MouseActionRelease:
		m.endGestures()
	}
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.help {
		m.help = false
		return nil
	}
	switch m.mode {
	case ModeDrawing, ModeEditing:
		return m.handleCanvasKey(msg)
	case ModeTextInput, ModeTextEdit, ModeImport:
		return m.handleInputKey(msg)
	case ModeLock:
		return m.handleLockKey(msg)
	case ModeArchive:
		return m.handleArchiveKey(msg)
	case ModeDetail:
		return m.handleDetailKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}
	return nil
}

// confirm opens a y/n prompt. Declining returns to the mode it came from.
func (m *model) confirm(action ConfirmAction) {
	m.endGestures()
	m.confirmAction = action
	m.confirmReturn = m.mode
	m.mode = ModeConfirm
}

func (m *model) handleCanvasKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		if !m.config.Confirmations {
			return tea.Quit
		}
		m.confirm(ConfirmQuit)
	case "?":
		m.help = true
	case "esc":
		m.endGestures()
		m.errorMessage = ""
		m.successMessage = ""
	case "d":
		m.setCanvasMode(ModeDrawing)
	case "e":
		m.setCanvasMode(ModeEditing)
	case "t":
		m.endGestures()
		m.input = ""
		m.mode = ModeTextInput
	case "i":
		m.endGestures()
		m.input = ""
		m.mode = ModeImport
	case "p":
		m.pasteText()
	case "c":
		m.selectedColor = (m.selectedColor + 1) % len(palette)
	case "C":
		m.selectedColor = (m.selectedColor + len(palette) - 1) % len(palette)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		m.selectedColor = int(key[0] - '1')
	case "x":
		if m.config.Confirmations {
			m.confirm(ConfirmClearCanvas)
		} else {
			m.clearCanvas()
		}
	case "g":
		m.generatePrompt()
	case "l":
		m.startLock()
	case "a":
		m.navigate(RouteArchive)
	case "s":
		if path, err := m.exportCanvasPNG(); err != nil {
			m.alert("Export failed: " + err.Error())
		} else {
			m.notify("Saved " + path)
		}
	}
	return nil
}

// editLine applies a key to a single-line input.
func editLine(s string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		return s + string(msg.Runes)
	case tea.KeySpace:
		return s + " "
	case tea.KeyBackspace:
		if r := []rune(s); len(r) > 0 {
			return string(r[:len(r)-1])
		}
	}
	return s
}

func (m *model) startTextEdit(id int) {
	m.editTextID = id
	m.input = m.scene.GetTextContent(id)
	m.mode = ModeTextEdit
}

func (m *model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.input = ""
		m.editTextID = -1
		m.mode = m.canvasMode
		return nil
	case tea.KeyCtrlC:
		m.input = ""
		m.mode = m.canvasMode
		return nil
	case tea.KeyEnter:
		input := m.input
		mode := m.mode
		m.input = ""
		m.mode = m.canvasMode
		switch mode {
		case ModeTextInput:
			if strings.TrimSpace(input) == "" {
				m.alert("Please enter some text.")
				return nil
			}
			m.scene.AddText(input, m.anchor())
		case ModeTextEdit:
			if err := m.scene.SetTextContent(m.editTextID, input); err != nil {
				m.alert("Text left unchanged: the new text is empty.")
			}
			m.editTextID = -1
		case ModeImport:
			return m.importFiles(input)
		}
		return nil
	}
	m.input = editLine(m.input, msg)
	return nil
}

func (m *model) importFiles(input string) tea.Cmd {
	sources := ImportFiles(splitImportInput(input))
	if len(sources) == 0 {
		m.alert("No images imported.")
		return nil
	}
	pos := m.anchor()
	cmds := make([]tea.Cmd, 0, len(sources))
	for i, src := range sources {
		offset := float64(i) * 20
		h := m.scene.StartLoad(src, Point{X: pos.X + offset, Y: pos.Y + offset})
		cmds = append(cmds, loadMediaCmd(h, src.Ref))
	}
	m.notify(fmt.Sprintf("Importing %d image(s)...", len(sources)))
	return tea.Batch(cmds...)
}

func (m *model) handleMediaLoaded(msg mediaLoadedMsg) {
	if msg.err != nil {
		slog.Warn("failed to load image", "error", msg.err)
		m.alert("Could not load image: " + msg.err.Error())
		return
	}
	if !m.scene.ResolveLoad(msg.handle, msg.img) {
		slog.Debug("ignored stale image load", "generation", msg.handle.Generation, "index", msg.handle.Index)
	}
}

func (m *model) pasteText() {
	text, err := readClipboardText()
	if err != nil {
		slog.Warn("failed to read clipboard", "error", err)
		m.alert("Could not read the clipboard.")
		return
	}
	text = cleanClipboardText(text)
	if text == "" {
		m.alert("Clipboard is empty.")
		return
	}
	m.scene.AddText(text, m.anchor())
}

func (m *model) generatePrompt() {
	prompt, err := m.prompts.Generate()
	if err != nil {
		m.alert("No prompts loaded.")
		return
	}
	m.currentPrompt = prompt
}

func (m *model) clearCanvas() {
	m.recorder.Reset()
	m.drag.End()
	m.scene.Clear()
}

// snapshotFrame rasterizes the finished scene into a PNG data URI.
func (m *model) snapshotFrame() (string, error) {
	m.raster.Render(BuildDrawList(m.scene, nil, m.color(), m.config.CanvasSize()))
	return m.raster.DataURI()
}

func (m *model) startLock() {
	m.endGestures()
	uri, err := m.snapshotFrame()
	if err != nil {
		slog.Warn("failed to capture canvas", "error", err)
		m.snapshot = ""
	} else {
		m.snapshot = uri
	}
	m.lockDate = ""
	m.lockTags = ""
	m.lockField = LockFieldDate
	m.navigate(RouteLock)
}

func (m *model) handleLockKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if m.lockField == LockFieldDate {
			m.lockField = LockFieldTags
		} else {
			m.lockField = LockFieldDate
		}
		return nil
	case tea.KeyEsc:
		// back to editing keeps the snapshot as a draft
		if m.snapshot != "" {
			if err := m.store.SaveDraft(m.ctx, m.snapshot); err != nil {
				slog.Warn("failed to save draft", "error", err)
			}
		}
		m.navigate(RouteCanvas)
		return nil
	case tea.KeyEnter:
		m.submitLock()
		return nil
	case tea.KeyCtrlC:
		m.confirm(ConfirmQuit)
		return nil
	}
	if m.lockField == LockFieldDate {
		m.lockDate = editLine(m.lockDate, msg)
	} else {
		m.lockTags = editLine(m.lockTags, msg)
	}
	return nil
}

func (m *model) submitLock() {
	date, err := parseUnlockDate(m.lockDate)
	if err != nil {
		m.alert("Invalid date, use YYYY-MM-DD.")
		return
	}
	_, err = m.pipeline.Lock(m.ctx, LockRequest{
		Snapshot:   m.snapshot,
		UnlockDate: date,
		Tags:       m.lockTags,
	})
	alert, route := m.bridge.take()
	if err != nil {
		slog.Debug("lock aborted", "error", err)
		m.alert(alert)
		return
	}
	m.clearCanvas()
	m.snapshot = ""
	if route != nil {
		m.navigate(*route)
	}
	m.notify(alert)
}

func (m *model) handleArchiveKey(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		if !m.config.Confirmations {
			return tea.Quit
		}
		m.confirm(ConfirmQuit)
	case "esc", "n":
		m.navigate(RouteCanvas)
	case "enter":
		if e, ok := m.selectedEntry(); ok {
			d := m.archive.Detail(e)
			m.detail = &d
			m.mode = ModeDetail
		}
	case "C":
		// clearing the store always asks, whatever the config says
		m.confirm(ConfirmClearAll)
	case "r":
		m.reloadArchive()
	case "?":
		m.help = true
	default:
		return m.handleArchiveNavigation(key)
	}
	return nil
}

func (m *model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.confirm(ConfirmQuit)
	case "esc", "enter", "q", "backspace":
		m.detail = nil
		m.mode = ModeArchive
	case "s":
		if m.detail == nil || m.detail.Locked {
			m.alert("This capsule is locked.")
			return nil
		}
		path := m.config.GetSavePath(exportName(m.now(), m.detail.ID))
		if err := writeDataURI(path, m.detail.Image); err != nil {
			m.alert("Export failed: " + err.Error())
			return nil
		}
		m.notify("Saved " + path)
	}
	return nil
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return m.doConfirm()
	case "n", "N", "esc":
		m.cancelConfirm()
	}
	return nil
}

func (m *model) cancelConfirm() {
	m.mode = m.confirmReturn
}

func (m *model) doConfirm() tea.Cmd {
	switch m.confirmAction {
	case ConfirmQuit:
		return tea.Quit
	case ConfirmClearCanvas:
		m.clearCanvas()
		m.mode = m.canvasMode
	case ConfirmClearAll:
		if err := m.archive.ClearAll(m.ctx, confirmed(true)); err != nil {
			slog.Warn("failed to clear store", "error", err)
			m.alert("Could not clear the archive: " + err.Error())
		} else {
			m.notify("All entries cleared.")
		}
		m.archiveIndex = 0
		m.mode = ModeArchive
		m.reloadArchive()
	}
	return nil
}
