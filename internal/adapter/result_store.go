package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "ridge.dev/pkg/ridge/internal/model"
)

// ResultStore persists design results.
type ResultStore interface {
	SaveResult(ctx context.Context, path m.Path, result m.DesignResult) error
	LoadResult(ctx context.Context, path m.Path) (m.DesignResult, error)
}

// YAMLResultStore stores results as YAML documents.
type YAMLResultStore struct{}

// NewResultStore returns a YAMLResultStore.
func NewResultStore() *YAMLResultStore {
	return &YAMLResultStore{}
}

// SaveResult writes result to path, creating parent directories.
func (s *YAMLResultStore) SaveResult(ctx context.Context, path m.Path, result m.DesignResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("Failed to create result directory", "dir", dir, "error", err)
			return fmt.Errorf("create result directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		slog.Error("Failed to write result", "path", path, "error", err)
		return fmt.Errorf("write result: %w", err)
	}

	slog.Info("Saved design result", "path", path, "variants", len(result.Variants))

	return nil
}

// LoadResult reads a result written by SaveResult.
func (s *YAMLResultStore) LoadResult(ctx context.Context, path m.Path) (m.DesignResult, error) {
	if err := ctx.Err(); err != nil {
		return m.DesignResult{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read result", "path", path, "error", err)
		return m.DesignResult{}, fmt.Errorf("read result: %w", err)
	}

	var result m.DesignResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return m.DesignResult{}, fmt.Errorf("decode result %s: %w", path, err)
	}

	return result, nil
}
