package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// navigate switches the UI to a route.
func (m *model) navigate(r Route) {
	switch r {
	case RouteCanvas:
		m.mode = m.canvasMode
		m.detail = nil
	case RouteLock:
		m.mode = ModeLock
	case RouteArchive:
		m.openArchive()
	}
}

func (m *model) openArchive() {
	m.endGestures()
	m.mode = ModeArchive
	m.detail = nil
	m.reloadArchive()
}

func (m *model) reloadArchive() {
	view, err := m.archive.Load(m.ctx)
	if err != nil {
		slog.Warn("failed to load archive", "error", err)
		m.alert("Could not load the archive: " + err.Error())
		return
	}
	m.archiveView = view
	if n := len(view.All()); m.archiveIndex >= n {
		m.archiveIndex = n - 1
	}
	if m.archiveIndex < 0 {
		m.archiveIndex = 0
	}
}

func (m *model) handleArchiveNavigation(key string) tea.Cmd {
	n := len(m.archiveView.All())
	if n == 0 {
		return nil
	}
	step := m.getMoveSpeed(key)
	switch key {
	case "k", "up", "K", "shift+up":
		m.archiveIndex -= step
	case "j", "down", "J", "shift+down":
		m.archiveIndex += step
	case "g", "home":
		m.archiveIndex = 0
	case "G", "end":
		m.archiveIndex = n - 1
	}
	if m.archiveIndex < 0 {
		m.archiveIndex = 0
	}
	if m.archiveIndex >= n {
		m.archiveIndex = n - 1
	}
	return nil
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "K", "J", "shift+up", "shift+down":
		return 5
	default:
		return 1
	}
}

func (m *model) selectedEntry() (LockedEntry, bool) {
	all := m.archiveView.All()
	if m.archiveIndex < 0 || m.archiveIndex >= len(all) {
		return LockedEntry{}, false
	}
	return all[m.archiveIndex], true
}

func waitForStoreChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
