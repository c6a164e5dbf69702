package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the string-keyed blob store the document lives in.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Has(key string) bool
	Erase(key string) error
	// Location is the directory whose changes signal a possible external
	// write.
	Location() string
	Close() error
}

// ErrNotFound is returned by KV.Read for a key that was never written.
var ErrNotFound = errors.New("store: key not found")

const (
	documentsDir = "documents"
	documentExt  = ".json"
	tempDir      = ".tmp"
)

type diskvKV struct {
	d    *diskv.Diskv
	base string
}

// NewDiskv stores each key as documents/<key>.json below base. Writes go
// through a temp file and a rename.
func NewDiskv(base string) KV {
	return &diskvKV{
		d: diskv.New(diskv.Options{
			BasePath:          base,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			TempDir:           filepath.Join(base, tempDir),
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		base: base,
	}
}

func (k *diskvKV) Read(key string) ([]byte, error) {
	if !k.d.Has(key) {
		return nil, ErrNotFound
	}
	// Bypass the cache so writes from other processes are seen.
	rc, err := k.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (k *diskvKV) Write(key string, val []byte) error {
	if err := os.MkdirAll(filepath.Join(k.base, tempDir), 0o755); err != nil {
		return err
	}
	return k.d.Write(key, val)
}

func (k *diskvKV) Has(key string) bool {
	return k.d.Has(key)
}

func (k *diskvKV) Erase(key string) error {
	return k.d.Erase(key)
}

func (k *diskvKV) Location() string {
	return filepath.Join(k.base, documentsDir)
}

func (k *diskvKV) Close() error {
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{documentsDir},
		FileName: key + documentExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, documentExt)
}

func validKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.ContainsAny(key, `/\`) && key != "." && key != ".."
}
