// Package adapter contains filesystem adapters for the bufsafe CLI.
package adapter

import (
	"context"
	"crypto/sha3"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	m "github.com/mouse-blink/bufsafe/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrNotDirectory indicates that an output path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

const (
	defaultHashBytes = 5
	defaultExtension = ".c"
)

// InstanceStore abstracts where rendered instances end up so the workflow
// can be tested without touching the disk.
type InstanceStore interface {
	// ResolveDir expands and absolutizes dir and checks that it is an
	// existing directory.
	ResolveDir(dir m.Path) (m.Path, error)

	// NameFor derives the content-addressed file name of a rendered text.
	NameFor(text string) string

	// WriteAll writes every instance into dir using up to threads writers.
	// onWritten is called once per written instance, never concurrently.
	WriteAll(ctx context.Context, dir m.Path, instances []m.Instance, threads int, onWritten func(m.Instance)) error
}

// LocalInstanceStore writes instances to the local filesystem.
type LocalInstanceStore struct {
	hashBytes int
	extension string
}

// NewLocalInstanceStore returns a store naming files with hashBytes bytes of
// SHAKE-128 digest and the given extension. Zero values select the defaults.
func NewLocalInstanceStore(hashBytes int, extension string) *LocalInstanceStore {
	if hashBytes <= 0 {
		hashBytes = defaultHashBytes
	}

	if extension == "" {
		extension = defaultExtension
	}

	return &LocalInstanceStore{hashBytes: hashBytes, extension: extension}
}

// ResolveDir expands a leading ~ and returns the absolute directory path.
func (s *LocalInstanceStore) ResolveDir(dir m.Path) (m.Path, error) {
	path, err := expandHome(string(dir))
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("outdir does not exist: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("outdir %s: %w", abs, ErrNotDirectory)
	}

	return m.Path(abs), nil
}

// NameFor returns the hex SHAKE-128 digest of text plus the extension.
func (s *LocalInstanceStore) NameFor(text string) string {
	sum := sha3.SumSHAKE128([]byte(text), s.hashBytes)

	return hex.EncodeToString(sum) + s.extension
}

// WriteAll fans the writes out over an errgroup; the first failure cancels
// the remaining writes.
func (s *LocalInstanceStore) WriteAll(ctx context.Context, dir m.Path, instances []m.Instance, threads int, onWritten func(m.Instance)) error {
	if threads <= 0 {
		threads = 1
	}

	for i, inst := range instances {
		if inst.Name == "" {
			return fmt.Errorf("instance %d has no file name", i)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var mu sync.Mutex

	for _, inst := range instances {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(string(dir), inst.Name)
			if err := os.WriteFile(path, []byte(inst.Text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			if onWritten != nil {
				mu.Lock()
				onWritten(inst)
				mu.Unlock()
			}

			return nil
		})
	}

	return g.Wait()
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
