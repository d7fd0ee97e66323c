package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Route int

const (
	RouteCanvas Route = iota
	RouteLock
	RouteArchive
)

func (r Route) String() string {
	switch r {
	case RouteCanvas:
		return "canvas"
	case RouteLock:
		return "lock"
	case RouteArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Alerter shows a blocking, user-facing message.
type Alerter interface {
	Alert(msg string)
}

type Navigator interface {
	Navigate(r Route)
}

type LockRequest struct {
	Snapshot   string
	UnlockDate *time.Time
	Tags       string
}

// ParseTags splits free text on commas, trims each tag and drops empty ones.
func ParseTags(input string) []string {
	tags := []string{}
	for _, t := range strings.Split(input, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// LockPipeline turns a canvas snapshot into a persisted capsule.
type LockPipeline struct {
	store *EntryStore
	alert Alerter
	nav   Navigator
	now   func() time.Time
	newID func() string
}

func NewLockPipeline(store *EntryStore, alert Alerter, nav Navigator) *LockPipeline {
	return &LockPipeline{
		store: store,
		alert: alert,
		nav:   nav,
		now:   time.Now,
		newID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Lock appends a new capsule to the store and navigates to the archive. A
// missing date or snapshot is reported to the user and leaves the store alone.
func (p *LockPipeline) Lock(ctx context.Context, req LockRequest) (LockedEntry, error) {
	if req.UnlockDate == nil || req.Snapshot == "" {
		p.alert.Alert("Please select a date and capture the canvas first.")
		if req.UnlockDate == nil {
			return LockedEntry{}, ErrNoUnlockDate
		}
		return LockedEntry{}, ErrNoSnapshot
	}

	entry := LockedEntry{
		ID:          p.newID(),
		Image:       req.Snapshot,
		LockedUntil: *req.UnlockDate,
		CreatedAt:   p.now(),
		Tags:        ParseTags(req.Tags),
		IsLocked:    true,
	}

	entries, err := p.store.Get(ctx)
	if err != nil {
		p.alert.Alert("Could not read the archive: " + err.Error())
		return LockedEntry{}, err
	}
	entries = append(entries, entry)
	if err := p.store.Set(ctx, entries); err != nil {
		p.alert.Alert("Could not save the capsule: " + err.Error())
		return LockedEntry{}, err
	}

	p.alert.Alert("Capsule locked until: " + entry.LockedUntil.Format(displayLayout))
	p.nav.Navigate(RouteArchive)
	return entry, nil
}

// parseUnlockDate reads a calendar day as local midnight. Blank input means no
// date was selected.
func parseUnlockDate(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, input, time.Local)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
