// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// newTestStore opens a private in-memory SQLite store.
func newTestStore(t *testing.T) Store {
	t.Helper()
	dsn := fmt.Sprintf("file:memdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	s, err := New("sqlite", dsn)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.LoadText(ctx, DefaultSlot)
	if err != nil || got != "" {
		t.Fatalf("LoadText on empty store = %q, %v", got, err)
	}

	if err := s.SaveText(ctx, DefaultSlot, "hello"); err != nil {
		t.Fatalf("SaveText: %v", err)
	}
	if err := s.SaveText(ctx, DefaultSlot, "hello again"); err != nil {
		t.Fatalf("SaveText overwrite: %v", err)
	}
	got, err = s.LoadText(ctx, DefaultSlot)
	if err != nil || got != "hello again" {
		t.Fatalf("LoadText = %q, %v", got, err)
	}

	if err := s.ClearText(ctx, DefaultSlot); err != nil {
		t.Fatalf("ClearText: %v", err)
	}
	if err := s.ClearText(ctx, DefaultSlot); err != nil {
		t.Fatalf("ClearText on missing slot: %v", err)
	}
	got, err = s.LoadText(ctx, DefaultSlot)
	if err != nil || got != "" {
		t.Fatalf("LoadText after clear = %q, %v", got, err)
	}
}

func TestSaveEmptyTextKeepsSlot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if err := s.SaveText(ctx, "blank", ""); err != nil {
		t.Fatalf("SaveText: %v", err)
	}
	slots, err := s.ListSlots(ctx)
	if err != nil {
		t.Fatalf("ListSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].Name != "blank" || slots[0].Content != "" {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}

func TestBlankSlotRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if err := s.SaveText(ctx, "  ", "x"); !errors.Is(err, ErrEmptySlot) {
		t.Fatalf("expected ErrEmptySlot, got %v", err)
	}
	if _, err := s.LoadText(ctx, ""); !errors.Is(err, ErrEmptySlot) {
		t.Fatalf("expected ErrEmptySlot, got %v", err)
	}
}

func TestListSlotsKeepsUUIDAcrossUpdates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, name := range []string{"b", "a"} {
		if err := s.SaveText(ctx, name, "v1 "+name); err != nil {
			t.Fatalf("SaveText(%s): %v", name, err)
		}
	}
	before, err := s.ListSlots(ctx)
	if err != nil {
		t.Fatalf("ListSlots: %v", err)
	}
	if len(before) != 2 || before[0].Name != "a" || before[1].Name != "b" {
		t.Fatalf("slots not ordered by name: %+v", before)
	}
	if before[0].UUID == "" || before[0].UUID == before[1].UUID {
		t.Fatalf("expected distinct UUIDs: %+v", before)
	}

	if err := s.SaveText(ctx, "a", "v2"); err != nil {
		t.Fatalf("SaveText update: %v", err)
	}
	after, _ := s.ListSlots(ctx)
	if after[0].UUID != before[0].UUID {
		t.Fatalf("UUID changed on update: %s -> %s", before[0].UUID, after[0].UUID)
	}
	if after[0].Content != "v2" {
		t.Fatalf("content not updated: %q", after[0].Content)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	_ = src.SaveText(ctx, "one", "... --- ...")
	_ = src.SaveText(ctx, "two", "Hello")

	data, err := src.ExportBackup(ctx)
	if err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeBackup(&buf, data); err != nil {
		t.Fatalf("EncodeBackup: %v", err)
	}
	decoded, err := DecodeBackup(&buf)
	if err != nil {
		t.Fatalf("DecodeBackup: %v", err)
	}

	dst := newTestStore(t)
	_ = dst.SaveText(ctx, "stale", "old")
	_ = dst.SaveText(ctx, "two", "overwritten")
	n, err := dst.ImportBackup(ctx, decoded, false)
	if err != nil || n != 2 {
		t.Fatalf("ImportBackup merge = %d, %v", n, err)
	}
	slots, _ := dst.ListSlots(ctx)
	if len(slots) != 3 {
		t.Fatalf("merge should keep unrelated slots, got %+v", slots)
	}
	if got, _ := dst.LoadText(ctx, "two"); got != "Hello" {
		t.Fatalf("merge should overwrite existing slot, got %q", got)
	}

	n, err = dst.ImportBackup(ctx, decoded, true)
	if err != nil || n != 2 {
		t.Fatalf("ImportBackup full = %d, %v", n, err)
	}
	slots, _ = dst.ListSlots(ctx)
	if len(slots) != 2 {
		t.Fatalf("full restore should drop unrelated slots, got %+v", slots)
	}
	if slots[0].UUID != data.Slots[0].UUID {
		t.Fatalf("full restore should keep backup UUIDs: %s vs %s", slots[0].UUID, data.Slots[0].UUID)
	}
}

func TestImportRejectsNewerSchema(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ImportBackup(context.Background(), &BackupData{SchemaVersion: BackupSchemaVersion + 1}, false)
	if err == nil {
		t.Fatal("expected schema version error")
	}
}

func TestWriteReadBackupFile(t *testing.T) {
	path := t.TempDir() + "/backup.json.zst"
	in := &BackupData{SchemaVersion: BackupSchemaVersion, Slots: []Slot{{UUID: "u1", Name: "n", Content: "c"}}}
	if err := WriteBackup(path, in); err != nil {
		t.Fatalf("WriteBackup: %v", err)
	}
	out, err := ReadBackup(path)
	if err != nil {
		t.Fatalf("ReadBackup: %v", err)
	}
	if len(out.Slots) != 1 || out.Slots[0].Content != "c" {
		t.Fatalf("unexpected backup: %+v", out)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:memdb_mig_%d?mode=memory&cache=shared", time.Now().UnixNano())
	s, err := New("sqlite", dsn)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()
	bs := s.(*BunStore)
	if err := RunMigrations(bs.bun.DB, "sqlite"); err != nil {
		t.Fatalf("second RunMigrations: %v", err)
	}
}

func TestUnsupportedDBType(t *testing.T) {
	if _, err := New("oracle", "x"); !errors.Is(err, ErrUnsupportedDB) {
		t.Fatalf("expected ErrUnsupportedDB, got %v", err)
	}
}

func TestRunDBMaintenanceSQLite(t *testing.T) {
	path := t.TempDir() + "/maint.db"
	s, err := New("sqlite", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = s.SaveText(context.Background(), DefaultSlot, "x")
	_ = s.Close()
	if err := RunDBMaintenance(context.Background(), "sqlite", path); err != nil {
		t.Fatalf("RunDBMaintenance: %v", err)
	}
}
