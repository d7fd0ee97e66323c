package main

import (
	"context"
	"time"
)

// Confirmer asks the user to confirm an irreversible operation.
type Confirmer interface {
	Confirm(msg string) bool
}

type ArchiveView struct {
	Locked   []LockedEntry
	Unlocked []LockedEntry
}

func (v ArchiveView) Empty() bool {
	return len(v.Locked) == 0 && len(v.Unlocked) == 0
}

// All returns locked entries followed by unlocked ones, the order they are
// listed in.
func (v ArchiveView) All() []LockedEntry {
	all := make([]LockedEntry, 0, len(v.Locked)+len(v.Unlocked))
	all = append(all, v.Locked...)
	return append(all, v.Unlocked...)
}

// EntryDetail is what the detail view may show. Image is empty for locked
// capsules.
type EntryDetail struct {
	ID          string
	Locked      bool
	Image       string
	LockedUntil string
	CreatedOn   string
	Tags        []string
}

type Archive struct {
	store *EntryStore
	now   func() time.Time
}

func NewArchive(store *EntryStore) *Archive {
	return &Archive{store: store, now: time.Now}
}

// Load reads every capsule and splits them by lock state, which is recomputed
// against the current time. An entry is locked only while its unlock time is
// strictly in the future.
func (a *Archive) Load(ctx context.Context) (ArchiveView, error) {
	entries, err := a.store.Get(ctx)
	if err != nil {
		return ArchiveView{}, err
	}
	now := a.now()
	view := ArchiveView{Locked: []LockedEntry{}, Unlocked: []LockedEntry{}}
	for _, e := range entries {
		e.IsLocked = e.LockedUntil.After(now)
		if e.IsLocked {
			view.Locked = append(view.Locked, e)
		} else {
			view.Unlocked = append(view.Unlocked, e)
		}
	}
	return view, nil
}

func (a *Archive) Detail(e LockedEntry) EntryDetail {
	d := EntryDetail{
		ID:          e.ID,
		Locked:      e.IsLocked,
		LockedUntil: FormatDate(e.LockedUntil),
		CreatedOn:   FormatDate(e.CreatedAt),
		Tags:        e.Tags,
	}
	if !e.IsLocked {
		d.Image = e.Image
	}
	return d
}

// ClearAll empties the whole store once the user confirms.
func (a *Archive) ClearAll(ctx context.Context, c Confirmer) error {
	if c == nil || !c.Confirm("Clear every capsule? This cannot be undone.") {
		return ErrNotConfirmed
	}
	return a.store.Clear(ctx)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return invalidDateText
	}
	return t.Local().Format(displayLayout)
}
