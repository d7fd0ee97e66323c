package main

import "errors"

var (
	ErrNoUnlockDate     = errors.New("no unlock date selected")
	ErrNoSnapshot       = errors.New("no canvas snapshot captured")
	ErrNoPrompts        = errors.New("no prompts loaded")
	ErrEmptyText        = errors.New("text is empty")
	ErrNotConfirmed     = errors.New("operation not confirmed")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrCorruptRecord    = errors.New("corrupt capsule record")
	ErrUnknownStore     = errors.New("unknown store backend")
	ErrEntryNotFound    = errors.New("capsule not found")
	ErrEntryLocked      = errors.New("capsule is still locked")
)
