// Package filesystem provides sandboxed filesystem access for servedir.
// All operations go through an os.Root so that even a path that slipped
// past resolution could not escape the served directory. Uploads are
// written atomically via a temp file and rename, with a SHA256-based etag
// computed during the copy.
package filesystem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"

	"github.com/google/uuid"
	"github.com/sagarc03/servedir"
)

// Store provides read, list, and write operations under a fixed root.
type Store struct {
	root *os.Root
}

// NewStore creates a Store serving the given root directory.
func NewStore(root *os.Root) *Store {
	return &Store{root: root}
}

// Stat returns metadata for a root-relative path. Returns
// servedir.ErrNotFound if the path does not exist.
func (s *Store) Stat(ctx context.Context, rel string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.root.Stat(rel)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, servedir.ErrNotFound
		}
		return nil, fmt.Errorf("stat %s: %w", rel, err)
	}
	return info, nil
}

// Open opens a file for reading. Returns servedir.ErrNotFound if the file
// does not exist. The caller closes the returned file.
func (s *Store) Open(ctx context.Context, rel string) (io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.root.Open(rel)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, servedir.ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", rel, err)
	}
	return f, nil
}

// ReadDir lists the immediate children of a directory, directories first
// and each group sorted by name.
func (s *Store) ReadDir(ctx context.Context, rel string) ([]servedir.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := fs.ReadDir(s.root.FS(), rel)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, servedir.ErrNotFound
		}
		return nil, fmt.Errorf("read dir %s: %w", rel, err)
	}

	entries := make([]servedir.Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, servedir.Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// Write streams content to dir/name atomically: the bytes go to a temp
// file inside the root, which is fsynced and renamed over the destination.
// An existing file at the destination is replaced; a failure at any point
// removes the temp file so no truncated destination is ever visible.
// The destination directory must already exist.
func (s *Store) Write(ctx context.Context, dir, name string, content io.Reader) (servedir.SaveResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return servedir.SaveResult{}, ctxErr
	}

	tmpFile := tmpFileName()
	t, createErr := s.root.Create(tmpFile)
	if createErr != nil {
		return servedir.SaveResult{}, fmt.Errorf("could not open temp file: %w", createErr)
	}

	success := false
	defer func() {
		if closeErr := t.Close(); closeErr != nil {
			slog.Warn("failed to close tmp file", "err", closeErr)
		}
		if !success {
			if rmErr := s.root.Remove(t.Name()); rmErr != nil {
				slog.Warn("failed to remove tmp file", "err", rmErr)
			}
		}
	}()

	h := sha256.New()
	w := io.MultiWriter(h, t)

	written, err := io.Copy(w, &ctxReader{ctx: ctx, r: content})
	if err != nil {
		return servedir.SaveResult{}, fmt.Errorf("could not copy file contents: %w", err)
	}

	if err := t.Sync(); err != nil {
		return servedir.SaveResult{}, fmt.Errorf("could not sync written file: %w", err)
	}

	dest := path.Join(dir, name)
	if renameErr := s.root.Rename(tmpFile, dest); renameErr != nil {
		return servedir.SaveResult{}, fmt.Errorf("failed to rename file: %w", renameErr)
	}

	etag := hex.EncodeToString(h.Sum(nil))
	success = true

	return servedir.SaveResult{BytesWritten: written, Etag: etag}, nil
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}
