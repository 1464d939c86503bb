// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadClear(t *testing.T) {
	env := newTestEnv(t)

	if out := env.mustRun(t, "", "save", "héllo"); out != "Saved 5 characters to slot \"savedText\"\n" {
		t.Fatalf("save = %q", out)
	}
	if out := env.mustRun(t, "", "load"); out != "héllo\n" {
		t.Fatalf("load = %q", out)
	}

	env.mustRun(t, "", "--storage.slot", "notes", "save", "other")
	out := env.mustRun(t, "", "slots")
	if !strings.Contains(out, "notes") || !strings.Contains(out, "savedText") {
		t.Fatalf("slots = %q", out)
	}

	if out := env.mustRun(t, "", "clear-storage"); out != "Cleared slot \"savedText\"\n" {
		t.Fatalf("clear-storage = %q", out)
	}
	if out := env.mustRun(t, "", "load"); out != "" {
		t.Fatalf("load after clear = %q", out)
	}
	if out := env.mustRun(t, "", "--storage.slot", "notes", "load"); out != "other\n" {
		t.Fatalf("other slot = %q", out)
	}
}

func TestSlotsEmpty(t *testing.T) {
	env := newTestEnv(t)
	if out := env.mustRun(t, "", "slots"); out != "No saved slots\n" {
		t.Fatalf("slots = %q", out)
	}
}

func TestBackupAndRestore(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "", "save", "first")
	env.mustRun(t, "", "--storage.slot", "b", "save", "second")

	file := filepath.Join(env.dir, "backup.json")
	out := env.mustRun(t, "", "backup", file)
	if out != "Backup written to "+file+".zst\n" {
		t.Fatalf("backup = %q", out)
	}

	env.mustRun(t, "", "clear-storage")
	env.mustRun(t, "", "--storage.slot", "c", "save", "extra")

	out = env.mustRun(t, "", "restore", file+".zst")
	if out != "Restored 2 slots from "+file+".zst\n" {
		t.Fatalf("restore = %q", out)
	}
	if out := env.mustRun(t, "", "load"); out != "first\n" {
		t.Fatalf("restored slot = %q", out)
	}
	if out := env.mustRun(t, "", "--storage.slot", "c", "load"); out != "extra\n" {
		t.Fatal("merge restore must keep other slots")
	}

	env.mustRun(t, "", "restore", "--full", file+".zst")
	if out := env.mustRun(t, "", "--storage.slot", "c", "load"); out != "" {
		t.Fatalf("full restore should drop slot c, got %q", out)
	}

	if _, err := env.run(t, "", "restore", filepath.Join(env.dir, "missing.zst")); err == nil {
		t.Fatal("restoring a missing file should fail")
	}
}

func TestDBMaintain(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "", "save", "x")
	if out := env.mustRun(t, "", "db-maintain", "--timeout", "30"); out != "Maintenance completed successfully\n" {
		t.Fatalf("db-maintain = %q", out)
	}
}
