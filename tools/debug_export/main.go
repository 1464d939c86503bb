// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// debug_export prints every storage slot of a database as indented JSON,
// the same document `wondertext backup` writes, but uncompressed.
//
// Without --dsn it runs against a seeded in-memory SQLite database, which
// is handy for checking migrations and the export format.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/wondertext/wondertext/internal/db"
)

const memoryDSN = "file:debug_export?mode=memory&cache=shared"

func main() {
	dbType := pflag.String("type", "sqlite", "database type: sqlite, postgres or mysql")
	dsn := pflag.String("dsn", "", "database DSN (default: seeded in-memory SQLite)")
	pflag.Parse()

	if err := run(context.Background(), os.Stdout, *dbType, *dsn); err != nil {
		fmt.Fprintf(os.Stderr, "debug_export: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, dbType, dsn string) error {
	seed := dsn == ""
	if seed {
		dbType, dsn = "sqlite", memoryDSN
	}
	store, err := db.New(dbType, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if seed {
		samples := map[string]string{
			db.DefaultSlot: "Hello, World!",
			"morse":        "... --- ...",
			"notes":        "Grüße aus Köln",
		}
		for slot, text := range samples {
			if err := store.SaveText(ctx, slot, text); err != nil {
				return fmt.Errorf("seed %q: %w", slot, err)
			}
		}
	}

	data, err := store.ExportBackup(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "slots: %d\n", len(data.Slots))
	for _, s := range data.Slots {
		fmt.Fprintf(w, "slot: %s (%d bytes, updated %s)\n", s.Name, len(s.Content), s.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
