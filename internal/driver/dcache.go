package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"minibasic/internal/diag"
	"minibasic/internal/source"
	"minibasic/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as the cache key.
type Digest = [32]byte

// DiskCache stores tokenized line records on disk, keyed by the source
// file's content hash. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the tokenized form of one source file.
type DiskPayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16 `msgpack:"schema"`

	Path  string             `msgpack:"path"`
	Lines []token.LineRecord `msgpack:"lines"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// A "lines" subdirectory keeps the cache readable and easy to clear.
	return filepath.Join(c.dir, "lines", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
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
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. It reports a
// miss when the entry does not exist or carries a stale schema.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// TokenizeFileCached is TokenizeFile with a read-through disk cache. Only
// files that tokenized without any diagnostic are cached; a cache hit skips
// lexing entirely. cache may be nil.
func TokenizeFileCached(path string, maxDiagnostics int, cache *DiskCache) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return loadFailure(fs, path, maxDiagnostics, err), false, err
	}
	file := fs.Get(fileID)

	var payload DiskPayload
	hit, err := cache.Get(file.Hash, &payload)
	if err != nil {
		return nil, false, err
	}
	if hit {
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Lines:   payload.Lines,
			Bag:     diag.NewBag(maxDiagnostics),
		}, true, nil
	}

	result := tokenizeLoaded(fs, fileID, maxDiagnostics)
	if result.Bag.Len() == 0 {
		err := cache.Put(file.Hash, &DiskPayload{
			Schema: diskCacheSchemaVersion,
			Path:   file.Path,
			Lines:  result.Lines,
		})
		if err != nil {
			return nil, false, err
		}
	}
	return result, false, nil
}
