package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/groupdo/pkg/logging"
	"tableflip.dev/groupdo/pkg/todo"
)

var (
	// ErrPersistenceRead wraps failures to read or decode the stored document.
	// Load logs it and falls back to an empty list.
	ErrPersistenceRead = errors.New("store: persistence read failed")
	// ErrPersistenceWrite wraps failures to write the document.
	ErrPersistenceWrite = errors.New("store: persistence write failed")
)

// Persistence stores the whole List as one document under one key.
type Persistence interface {
	// Load never fails: a missing, unreadable or invalid document yields an
	// empty list and a logged warning.
	Load(ctx context.Context) *todo.List
	// Save overwrites the document. It does nothing when the encoded bytes
	// match what was last read or written.
	Save(ctx context.Context, l *todo.List) error
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Option configures Load.
type Option func(*persistence)

// WithLogger sets the logger used for fail-soft load warnings.
func WithLogger(l *log.Logger) Option {
	return func(p *persistence) {
		if l != nil {
			p.log = l
		}
	}
}

// WithKV replaces the configured backend.
func WithKV(kv KV) Option {
	return func(p *persistence) {
		p.kv = kv
	}
}

// Load opens the configured backend. A nil cfg reads the config from disk.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	key := cfg.Key()
	if !validKey(key) {
		return nil, fmt.Errorf("store: invalid key %q", key)
	}

	p := &persistence{key: key, log: logging.Discard()}
	for _, opt := range opts {
		opt(p)
	}
	if p.kv != nil {
		return p, nil
	}

	base := cfg.BasePath()
	switch cfg.Backend() {
	case BackendDiskv, "":
		p.kv = NewDiskv(base)
	case BackendSQLite:
		kv, err := OpenSQLite(filepath.Join(base, SQLiteFile))
		if err != nil {
			return nil, fmt.Errorf("store: open sqlite: %w", err)
		}
		p.kv = kv
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
	return p, nil
}

type persistence struct {
	mu   sync.Mutex
	kv   KV
	key  string
	log  *log.Logger
	last []byte
}

func (p *persistence) Load(ctx context.Context) *todo.List {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := p.kv.Read(p.key)
	if errors.Is(err, ErrNotFound) {
		p.log.Debug("no saved list, starting empty", "key", p.key)
		p.last = nil
		return todo.New()
	}
	if err != nil {
		p.log.Warn("starting with an empty list", "key", p.key, "err", fmt.Errorf("%w: %w", ErrPersistenceRead, err))
		return todo.New()
	}
	p.last = data

	l, err := Decode(data)
	if err != nil {
		p.log.Warn("starting with an empty list", "key", p.key, "err", fmt.Errorf("%w: %w", ErrPersistenceRead, err))
		return todo.New()
	}
	return l
}

func (p *persistence) Save(ctx context.Context, l *todo.List) error {
	data, err := Encode(l)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last != nil && bytes.Equal(data, p.last) {
		return nil
	}
	if err := p.kv.Write(p.key, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	p.last = data
	return nil
}

// changed reports whether the stored bytes differ from the last bytes this
// process read or wrote.
func (p *persistence) changed() bool {
	p.mu.Lock()
	last := p.last
	p.mu.Unlock()

	data, err := p.kv.Read(p.key)
	if errors.Is(err, ErrNotFound) {
		return last != nil
	}
	if err != nil {
		p.log.Debug("watch read failed", "key", p.key, "err", err)
		return false
	}
	return !bytes.Equal(data, last)
}

func (p *persistence) Close() error {
	return p.kv.Close()
}
