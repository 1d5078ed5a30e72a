// Package pkg provides utilities shared by ridge commands.
package pkg

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// FileSpill appends items of type T to a temporary gob file so that large
// outputs, such as exploded sequence lists, never have to sit in memory.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpill[T any] struct {
	path    string
	file    *os.File
	buf     *bufio.Writer
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// NewFileSpill creates a spill file in dir. An empty dir uses os.TempDir.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "ridge-spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	buf := bufio.NewWriter(file)

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		buf:     buf,
		encoder: gob.NewEncoder(buf),
	}, nil
}

// Append implements FileSpill.
func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errors.New("filespill is closed")
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

// AppendBatch implements FileSpill.
func (f *fileSpill[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Path implements FileSpill.
func (f *fileSpill[T]) Path() string {
	return f.path
}

// Len implements FileSpill.
func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range calls fn for every item in append order. An error from fn stops the
// iteration and is returned.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errors.New("filespill is closed")
	}

	if err := f.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush spill: %w", err)
	}

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open file for range", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(bufio.NewReader(file))

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close closes and removes the spill file.
func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	closeErr := f.file.Close()
	removeErr := os.Remove(f.path)

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return errors.Join(closeErr, removeErr)
}
