// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-account-sync/models"
)

// fileItemMirror keeps a live item collection as an indented JSON array in a
// single file. Writes go through a temp file and a rename.
type fileItemMirror struct {
	path string
	mu   sync.Mutex
}

// NewFileItemMirror returns an [ItemMirror] for dir/<platform>.json.
func NewFileItemMirror(dir, platform string) ItemMirror {
	return &fileItemMirror{path: filepath.Join(dir, platform+".json")}
}

// Load returns nil when the file does not exist yet. Array elements without
// an id are dropped.
func (m *fileItemMirror) Load(_ context.Context) ([]models.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read item mirror: %w", err)
	}

	var raw []models.Entity
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: item mirror: %w", ErrMalformedValue, err)
	}

	items := make([]models.Entity, 0, len(raw))
	for _, e := range raw {
		if e.ID() != "" {
			items = append(items, e)
		}
	}
	return items, nil
}

func (m *fileItemMirror) Save(_ context.Context, items []models.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if items == nil {
		items = []models.Entity{}
	}
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode item mirror: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create item mirror dir: %w", err)
	}
	if err := writeFileAtomic(m.path, payload, 0o600); err != nil {
		return fmt.Errorf("write item mirror: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(mode); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
