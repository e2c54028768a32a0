package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ccparse/internal/ast"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// cachePayload is the msgpack envelope stored on disk for one valid message.
type cachePayload struct {
	Schema uint16
	Commit ast.Commit
}

// DiskCache stores parsed commits keyed by the sha256 of the normalized
// message content, so unchanged messages skip re-parsing across runs.
// Only valid commits are cached; invalid messages always re-parse so
// diagnostics stay fresh. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at $XDG_CACHE_HOME/ccparse, falling
// back to ~/.cache/ccparse.
func OpenDiskCache() (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, "ccparse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory by prefix keeps listings short for manual cleanup.
	return filepath.Join(c.dir, "msgs", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a commit to the disk cache.
func (c *DiskCache) Put(key [32]byte, commit *ast.Commit) error {
	if c == nil || commit == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err = os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	err = enc.Encode(&cachePayload{Schema: cacheSchemaVersion, Commit: *commit})
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads a cached commit. A missing entry, a schema mismatch or a corrupt
// payload all count as a miss, never an error.
func (c *DiskCache) Get(key [32]byte) (*ast.Commit, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload cachePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload.Commit, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
