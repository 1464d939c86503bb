// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SlotModel is the bun model for the text_slots table.
type SlotModel struct {
	bun.BaseModel `bun:"table:text_slots"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UUID      string    `bun:"uuid,notnull"`
	Name      string    `bun:"name,notnull"`
	Content   string    `bun:"content,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

func slotModelToSlot(m SlotModel) Slot {
	return Slot{
		UUID:      m.UUID,
		Name:      m.Name,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BunStore implements Store on top of bun for every supported dialect.
type BunStore struct {
	bun *bun.DB
}

// WithTx runs fn inside a transaction, rolling back if fn returns an error.
func WithTx(ctx context.Context, bdb *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return bdb.RunInTx(ctx, nil, fn)
}

func validSlot(slot string) (string, error) {
	s := strings.TrimSpace(slot)
	if s == "" {
		return "", ErrEmptySlot
	}
	return s, nil
}

// now is overridable in tests.
var now = func() time.Time { return time.Now().UTC() }

// upsertSlot writes content under name. id is only used for new rows; an
// empty id gets a fresh UUID.
func upsertSlot(ctx context.Context, tx bun.Tx, name, content, id string) error {
	var existing SlotModel
	err := tx.NewSelect().Model(&existing).Where("name = ?", name).Limit(1).Scan(ctx)
	switch {
	case err == nil:
		existing.Content = content
		existing.UpdatedAt = now()
		_, err = tx.NewUpdate().Model(&existing).Column("content", "updated_at").WherePK().Exec(ctx)
		return MapDBError(err)
	case errors.Is(err, sql.ErrNoRows):
		if id == "" {
			id = uuid.NewString()
		}
		ts := now()
		m := &SlotModel{UUID: id, Name: name, Content: content, CreatedAt: ts, UpdatedAt: ts}
		_, err = tx.NewInsert().Model(m).Exec(ctx)
		return MapDBError(err)
	default:
		return err
	}
}

// SaveText stores text under slot.
func (s *BunStore) SaveText(ctx context.Context, slot, text string) error {
	name, err := validSlot(slot)
	if err != nil {
		return err
	}
	err = WithTx(ctx, s.bun, func(ctx context.Context, tx bun.Tx) error {
		return upsertSlot(ctx, tx, name, text, "")
	})
	if err != nil {
		return fmt.Errorf("save slot %q: %w", name, err)
	}
	dbLogf("db: saved %d bytes to slot %q", len(text), name)
	return nil
}

// LoadText returns the text stored under slot, or "" when it was never saved.
func (s *BunStore) LoadText(ctx context.Context, slot string) (string, error) {
	name, err := validSlot(slot)
	if err != nil {
		return "", err
	}
	var m SlotModel
	err = s.bun.NewSelect().Model(&m).Where("name = ?", name).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load slot %q: %w", name, err)
	}
	return m.Content, nil
}

// ClearText removes slot.
func (s *BunStore) ClearText(ctx context.Context, slot string) error {
	name, err := validSlot(slot)
	if err != nil {
		return err
	}
	if _, err := s.bun.NewDelete().Model((*SlotModel)(nil)).Where("name = ?", name).Exec(ctx); err != nil {
		return fmt.Errorf("clear slot %q: %w", name, err)
	}
	return nil
}

// ListSlots returns every stored slot ordered by name.
func (s *BunStore) ListSlots(ctx context.Context) ([]Slot, error) {
	var ms []SlotModel
	if err := s.bun.NewSelect().Model(&ms).Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	out := make([]Slot, 0, len(ms))
	for _, m := range ms {
		out = append(out, slotModelToSlot(m))
	}
	return out, nil
}

// ExportBackup snapshots every slot.
func (s *BunStore) ExportBackup(ctx context.Context) (*BackupData, error) {
	slots, err := s.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	return &BackupData{SchemaVersion: BackupSchemaVersion, CreatedAt: now(), Slots: slots}, nil
}

// ImportBackup restores slots from data and returns how many were written.
func (s *BunStore) ImportBackup(ctx context.Context, data *BackupData, full bool) (int, error) {
	if data == nil {
		return 0, errors.New("import backup: no data")
	}
	if data.SchemaVersion > BackupSchemaVersion {
		return 0, fmt.Errorf("import backup: schema version %d is newer than supported %d", data.SchemaVersion, BackupSchemaVersion)
	}
	n := 0
	err := WithTx(ctx, s.bun, func(ctx context.Context, tx bun.Tx) error {
		if full {
			if _, err := tx.NewDelete().Model((*SlotModel)(nil)).Where("1 = 1").Exec(ctx); err != nil {
				return err
			}
		}
		for _, slot := range data.Slots {
			name, err := validSlot(slot.Name)
			if err != nil {
				return err
			}
			if err := upsertSlot(ctx, tx, name, slot.Content, slot.UUID); err != nil {
				return fmt.Errorf("slot %q: %w", name, err)
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import backup: %w", err)
	}
	return n, nil
}

// Close releases the database connection.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
