package main

import (
	"context"
	"time"
)

type model struct {
	ctx    context.Context
	width  int
	height int
	mode   Mode
	// canvasMode is the interaction mode to return to after a modal input.
	canvasMode Mode
	help       bool
	config     *Config

	scene    *Scene
	recorder *StrokeRecorder
	drag     *DragController
	raster   *Rasterizer
	mapper   *CoordinateMapper

	selectedColor int
	pointer       Point
	hasPointer    bool
	lastClickAt   time.Time
	lastClickX    int
	lastClickY    int

	input      string
	editTextID int

	lockDate  string
	lockTags  string
	lockField LockField
	snapshot  string

	store    *EntryStore
	pipeline *LockPipeline
	archive  *Archive
	bridge   *uiBridge

	archiveView  ArchiveView
	archiveIndex int
	detail       *EntryDetail

	prompts       *PromptList
	currentPrompt string

	confirmAction  ConfirmAction
	confirmReturn  Mode
	errorMessage   string
	successMessage string

	storeChanges <-chan struct{}
	now          func() time.Time
}

// uiBridge lets the lock pipeline talk to the UI. Alerts end up on the status
// line and navigation requests are applied after the pipeline returns.
type uiBridge struct {
	alert   string
	pending *Route
}

func (b *uiBridge) Alert(msg string) {
	b.alert = msg
}

func (b *uiBridge) Navigate(r Route) {
	b.pending = &r
}

// take returns and resets what the pipeline left behind.
func (b *uiBridge) take() (string, *Route) {
	alert, route := b.alert, b.pending
	b.alert, b.pending = "", nil
	return alert, route
}

// confirmed answers a Confirmer with a decision already taken in the UI.
type confirmed bool

func (c confirmed) Confirm(string) bool {
	return bool(c)
}

type storeChangedMsg struct{}
