// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/wondertext/wondertext/internal/db"
	"github.com/wondertext/wondertext/internal/i18n"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save [text...]",
		Short: "Save text to the storage slot",
		Long:  "Stores text under the configured slot (--storage.slot), replacing previous content." + inputHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			slot := a.config.Storage.Slot
			if err := store.SaveText(cmd.Context(), slot, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.saved", utf8.RuneCountInString(text), slot))
			return nil
		},
	}
}

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Print the text stored in the storage slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			text, err := store.LoadText(cmd.Context(), a.config.Storage.Slot)
			if err != nil {
				return err
			}
			if text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
}

func newClearStorageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-storage",
		Short: "Remove the storage slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			slot := a.config.Storage.Slot
			if err := store.ClearText(cmd.Context(), slot); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.cleared", slot))
			return nil
		},
	}
}

func newSlotsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List stored slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			slots, err := store.ListSlots(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(slots) == 0 {
				fmt.Fprintln(out, i18n.T("cli.no_slots"))
				return nil
			}
			t := newTable(i18n.T("table.slot"), i18n.T("editor.characters"), i18n.T("table.updated"))
			for _, s := range slots {
				t.Row(s.Name, strconv.Itoa(utf8.RuneCountInString(s.Content)), s.UpdatedAt.Local().Format(time.DateTime))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Create a compressed (zstd) JSON backup of all slots",
		Long: `Dumps every storage slot into a single Zstandard-compressed JSON file.

If an output file is specified, '.zst' is appended unless already present.
Without one, 'wondertext-backup-YYYY-MM-DD.json.zst' is used.

The file can be restored into any supported database backend.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile := fmt.Sprintf("wondertext-backup-%s.json.zst", time.Now().Format("2006-01-02"))
			if len(args) > 0 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			data, err := store.ExportBackup(cmd.Context())
			if err != nil {
				return fmt.Errorf("export backup: %w", err)
			}
			if err := db.WriteBackup(outputFile, data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.backup_written", outputFile))
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "restore <backup-file.zst>",
		Short: "Restore slots from a compressed JSON backup",
		Long: `Restores storage slots from a backup written by 'wondertext backup'.

By default slots from the backup are merged in: existing slots with the same
name are overwritten and other slots are kept. With --full every existing
slot is removed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := db.ReadBackup(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			n, err := store.ImportBackup(cmd.Context(), data, full)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.restored", n, args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Remove all existing slots before importing")
	return cmd
}

func newDBMaintainCmd(a *app) *cobra.Command {
	var timeoutSec int
	cmd := &cobra.Command{
		Use:   "db-maintain",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) for the configured DB",
		Long:  `Runs engine-specific maintenance tasks (PRAGMA optimize, VACUUM, OPTIMIZE TABLE).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeoutSec > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
				defer cancel()
			}
			if err := db.RunDBMaintenance(ctx, a.config.Database.Type, a.config.Database.Dsn); err != nil {
				return fmt.Errorf("maintenance failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Maintenance completed successfully")
			return nil
		},
	}
	cmd.Flags().IntVar(&timeoutSec, "timeout", 0, "Timeout in seconds for maintenance (0 means no timeout)")
	return cmd
}
