// Package filestore keeps the uploaded resume files.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves an uploaded file and returns a URI that Delete understands.
type Store interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, uri string) error
}

// objectName gives every upload a unique name while keeping its extension.
func objectName(filename string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(filename))
}

// Local stores files in a directory on disk.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(_ context.Context, filename string, data []byte, _ string) (string, error) {
	dst := filepath.Join(l.dir, objectName(filename))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return dst, nil
}

// Delete removes the file; a file that is already gone is not an error.
func (l *Local) Delete(_ context.Context, uri string) error {
	if !strings.HasPrefix(filepath.Clean(uri), filepath.Clean(l.dir)+string(os.PathSeparator)) {
		return fmt.Errorf("refusing to delete %q outside %q", uri, l.dir)
	}
	if err := os.Remove(uri); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
