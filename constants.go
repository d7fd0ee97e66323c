package main

import "image/color"

type Mode int

const (
	ModeDrawing Mode = iota
	ModeEditing
	ModeTextInput
	ModeTextEdit
	ModeImport
	ModeLock
	ModeArchive
	ModeDetail
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmClearCanvas ConfirmAction = iota
	ConfirmClearAll
	ConfirmQuit
)

// LockField is the focused input of the lock form.
type LockField int

const (
	LockFieldDate LockField = iota
	LockFieldTags
)

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600

	strokeWidth = 2.0
	textSize    = 24.0 // font size and hit-test height of text objects

	doubleClickMillis = 400

	entriesSlot = "lockedEntries"
	draftSlot   = "canvasImage"

	schemaVersion = 2

	dateLayout      = "2006-01-02"
	displayLayout   = "January 02, 2006"
	invalidDateText = "Invalid Date"
	lockGlyph       = "🔒"
)

// palette holds the selectable stroke colors. The first entry is the default.
var palette = []color.RGBA{
	{0, 0, 0, 255},
	{220, 38, 38, 255},
	{22, 163, 74, 255},
	{234, 179, 8, 255},
	{37, 99, 235, 255},
	{192, 38, 211, 255},
	{8, 145, 178, 255},
	{120, 113, 108, 255},
}

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray"}
