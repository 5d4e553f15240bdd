// Package writer exposes sinks for rendered command output.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a complete rendered document.
type Sink interface {
	WriteAll(buf []byte) error
}

// FileWriter writes output to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteAll writes buf to the configured path via temp file + rename, so a
// reader never observes a partially written file.
func (w *FileWriter) WriteAll(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".bvhctl-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// MemWriter captures output in memory.
type MemWriter struct {
	Buf []byte
}

// WriteAll replaces the captured buffer with a copy of buf.
func (w *MemWriter) WriteAll(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
