// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package badgerstore implements a [store.KV] on top of BadgerDB.
package badgerstore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/z5labs/grip/store"

	"github.com/dgraph-io/badger/v4"
)

// Config configures how the database is opened.
type Config struct {
	// Path is the directory the database files live in. It is
	// required unless InMemory is set.
	Path string

	InMemory   bool
	SyncWrites bool

	// Prefix is prepended to every key, which allows multiple
	// KVs to share one database.
	Prefix string

	// Logger receives the database's internal logs. A nil Logger
	// disables them.
	Logger *slog.Logger
}

// DefaultConfig returns the Config for a persistent database.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// InMemoryConfig returns the Config for a database which is never
// written to disk.
func InMemoryConfig() Config {
	return Config{
		InMemory: true,
	}
}

// ErrMissingPath is returned by [Open] for persistent databases without a path.
var ErrMissingPath = errors.New("badgerstore: path is required for a persistent database")

// KV is a [store.KV] backed by BadgerDB.
type KV struct {
	db     *badger.DB
	prefix []byte
}

var _ store.KV = (*KV)(nil)

// Open opens the database described by cfg.
func Open(cfg Config) (*KV, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrMissingPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return New(db, cfg.Prefix), nil
}

// New wraps an already opened database. Closing the returned KV
// closes db.
func New(db *badger.DB, prefix string) *KV {
	return &KV{
		db:     db,
		prefix: []byte(prefix),
	}
}

func (kv *KV) key(k string) []byte {
	b := make([]byte, 0, len(kv.prefix)+len(k))
	b = append(b, kv.prefix...)
	return append(b, k...)
}

// Load implements the [store.KV] interface.
func (kv *KV) Load(key string) (string, bool, error) {
	var v []byte
	err := kv.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(kv.key(key))
		if err != nil {
			return err
		}
		v, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

// Store implements the [store.KV] interface.
func (kv *KV) Store(key, value string) error {
	return kv.db.Update(func(txn *badger.Txn) error {
		return txn.Set(kv.key(key), []byte(value))
	})
}

// Delete implements the [store.KV] interface.
func (kv *KV) Delete(key string) error {
	return kv.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(kv.key(key))
	})
}

// Close closes the underlying database.
func (kv *KV) Close() error {
	return kv.db.Close()
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
