// Package storage persists the state snapshot under a single fixed key and
// provides the local file operations used for exports and the inbox.
package storage

import (
	"context"
	"time"
)

// Provider stores one opaque snapshot. Load returns an error wrapping
// apperr.ErrNotFound when nothing has been saved under the key.
type Provider interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

// FileInfo describes a markdown file under an FS root.
type FileInfo struct {
	Path      string
	Checksum  string
	UpdatedAt time.Time
}
