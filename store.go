package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// KV is a store of named slots. Clear empties every slot, not only the ones
// this program writes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	Close() error
}

type LockedEntry struct {
	ID          string
	Image       string
	LockedUntil time.Time
	CreatedAt   time.Time
	Tags        []string
	IsLocked    bool

	// rawLockedUntil keeps an unlock date that could not be parsed so it is
	// written back unchanged.
	rawLockedUntil string
}

// entryRecord is the persisted layout of a LockedEntry. Records written before
// versioning have no schemaVersion and may lack id and createdAt.
type entryRecord struct {
	SchemaVersion int      `json:"schemaVersion,omitempty"`
	ID            string   `json:"id,omitempty"`
	Image         string   `json:"image"`
	LockedUntil   string   `json:"lockedUntil"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	IsLocked      bool     `json:"isLocked"`
	Tags          []string `json:"tags"`
}

func toRecord(e LockedEntry) entryRecord {
	rec := entryRecord{
		SchemaVersion: schemaVersion,
		ID:            e.ID,
		Image:         e.Image,
		LockedUntil:   e.LockedUntil.UTC().Format(time.RFC3339Nano),
		IsLocked:      e.IsLocked,
		Tags:          e.Tags,
	}
	if e.LockedUntil.IsZero() && e.rawLockedUntil != "" {
		rec.LockedUntil = e.rawLockedUntil
	}
	if !e.CreatedAt.IsZero() {
		rec.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	return rec
}

// fromRecord migrates one record. pos is the index of the record in the slot
// and names legacy records that have no id. An unparseable unlock date loads as
// the zero time, which displays as an invalid date.
func fromRecord(rec entryRecord, pos int) LockedEntry {
	e := LockedEntry{
		ID:       rec.ID,
		Image:    rec.Image,
		IsLocked: rec.IsLocked,
		Tags:     rec.Tags,
	}
	if lockedUntil, err := time.Parse(time.RFC3339Nano, rec.LockedUntil); err == nil {
		e.LockedUntil = lockedUntil
	} else {
		slog.Warn("capsule has an invalid unlock date", "record", pos, "lockedUntil", rec.LockedUntil)
		e.rawLockedUntil = rec.LockedUntil
	}
	if rec.CreatedAt != "" {
		if created, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
			e.CreatedAt = created
		}
	}
	if rec.SchemaVersion < schemaVersion && e.ID == "" {
		e.ID = "legacy-" + strconv.Itoa(pos)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e
}

// EntryStore reads and writes the whole capsule list in one slot.
type EntryStore struct {
	kv KV
}

func NewEntryStore(kv KV) *EntryStore {
	return &EntryStore{kv: kv}
}

func (s *EntryStore) Get(ctx context.Context) ([]LockedEntry, error) {
	data, ok, err := s.kv.Get(ctx, entriesSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to read capsules: %w", err)
	}
	if !ok || len(data) == 0 {
		return []LockedEntry{}, nil
	}
	var recs []entryRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	entries := make([]LockedEntry, 0, len(recs))
	for i, rec := range recs {
		entries = append(entries, fromRecord(rec, i))
	}
	return entries, nil
}

func (s *EntryStore) Set(ctx context.Context, entries []LockedEntry) error {
	recs := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, toRecord(e))
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal capsules: %w", err)
	}
	if err := s.kv.Set(ctx, entriesSlot, data); err != nil {
		return fmt.Errorf("failed to write capsules: %w", err)
	}
	return nil
}

// Find returns the entry with the given id.
func (s *EntryStore) Find(ctx context.Context, id string) (LockedEntry, error) {
	entries, err := s.Get(ctx)
	if err != nil {
		return LockedEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return LockedEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

func (s *EntryStore) SaveDraft(ctx context.Context, snapshot string) error {
	if err := s.kv.Set(ctx, draftSlot, []byte(snapshot)); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}

func (s *EntryStore) LoadDraft(ctx context.Context) (string, bool, error) {
	data, ok, err := s.kv.Get(ctx, draftSlot)
	if err != nil {
		return "", false, fmt.Errorf("failed to read draft: %w", err)
	}
	return string(data), ok, nil
}

// Clear empties the entire store.
func (s *EntryStore) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

// OpenKV opens the backend named in the config.
func OpenKV(ctx context.Context, cfg *Config) (KV, error) {
	switch cfg.Store {
	case "file", "":
		return NewFileKV(cfg.StorePath)
	case "redis":
		return NewRedisKV(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix)
	case "sqlite":
		return NewSQLiteKV(ctx, cfg.StorePath)
	case "memory":
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}
