package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// DumpCacheSchemaVersion - increment when DumpPayload format changes.
const DumpCacheSchemaVersion uint16 = 1

// Digest identifies one rendered dump: buffer, invocation and format.
type Digest [sha256.Size]byte

// DumpKey hashes everything that influences the rendered bytes. Fields are
// length-prefixed so concatenation cannot collide.
func DumpKey(src string, args []string, filename, format string) Digest {
	h := sha256.New()
	field := func(s string) {
		fmt.Fprintf(h, "%d:", len(s))
		h.Write([]byte(s))
	}
	field(src)
	for _, a := range args {
		field(a)
	}
	field(filename)
	field(format)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DumpCache хранит отрендеренные дампы по Digest на диске.
// Только для детерминированных форматов: identity-теги в кеш не попадают.
// Thread-safe for concurrent access.
type DumpCache struct {
	mu  sync.RWMutex
	dir string
}

// DumpPayload stores one rendered dump.
type DumpPayload struct {
	Schema   uint16
	Format   string
	Rendered []byte
	Created  int64 // unix seconds
}

// OpenDumpCache initializes the cache at the standard location.
func OpenDumpCache(app string) (*DumpCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDumpCacheAt(filepath.Join(base, app))
}

// OpenDumpCacheAt initializes the cache in an explicit directory.
func OpenDumpCacheAt(dir string) (*DumpCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DumpCache{dir: dir}, nil
}

func (c *DumpCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог для удобства читаемости/очистки.
	return filepath.Join(c.dir, "dumps", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DumpCache) Put(key Digest, payload *DumpPayload) error {
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
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A payload with
// a foreign schema version counts as a miss.
func (c *DumpCache) Get(key Digest, out *DumpPayload) (bool, error) {
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
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != DumpCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DumpCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
