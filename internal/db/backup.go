// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
)

// BackupSchemaVersion is written into every backup.
const BackupSchemaVersion = 1

// BackupData is the JSON document stored in a backup file.
type BackupData struct {
	SchemaVersion int       `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
	Slots         []Slot    `json:"slots"`
}

// EncodeBackup writes data as zstd-compressed JSON.
func EncodeBackup(w io.Writer, data *BackupData) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zw.Close()
}

// DecodeBackup reads zstd-compressed JSON written by EncodeBackup.
func DecodeBackup(r io.Reader) (*BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return &data, nil
}

// WriteBackup writes data to filename.
func WriteBackup(filename string, data *BackupData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := EncodeBackup(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadBackup reads a backup written by WriteBackup.
func ReadBackup(filename string) (*BackupData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return DecodeBackup(file)
}
