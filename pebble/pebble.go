// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iter)(nil)
)

type Config struct {
	CacheSize                   int // B
	BytesPerSync                int // B
	MemTableStopWritesThreshold int // num tables
	MemTableSize                int // B
	MaxOpenFiles                int
	MaxConcurrentCompactions    int
	Sync                        bool
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   512 * 1024 * 1024,
		BytesPerSync:                4 * 1024 * 1024,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * 1024 * 1024,
		MaxOpenFiles:                4_096,
		MaxConcurrentCompactions:    1,
		Sync:                        false,
	}
}

type Database struct {
	db      *pebble.DB
	metrics *metrics

	sync   bool
	closed utils.Atomic[bool]
}

// New opens (creating if necessary) a pebble database rooted at [file]
// and returns it with the prometheus registry collecting its metrics.
func New(file string, cfg Config) (database.Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d := &Database{metrics: metrics, sync: cfg.Sync}

	opts := &pebble.Options{
		Cache:                       pebble.NewCache(int64(cfg.CacheSize)),
		BytesPerSync:                cfg.BytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                uint64(cfg.MemTableSize),
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.MaxConcurrentCompactions },
		EventListener: &pebble.EventListener{
			WriteStallBegin: d.onWriteStallBegin,
			WriteStallEnd:   d.onWriteStallEnd,
			CompactionBegin: d.onCompactionBegin,
			CompactionEnd:   d.onCompactionEnd,
		},
	}
	// Disable seek compaction; it causes unexpected background activity
	// on read-heavy workloads.
	opts.Experimental.ReadSamplingMultiplier = -1

	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}
	d.db = db
	return d, registry, nil
}

func (db *Database) Close() error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	db.closed.Set(true)
	return updateError(db.db.Close())
}

func (db *Database) HealthCheck(_ context.Context) (interface{}, error) {
	if db.closed.Get() {
		return nil, database.ErrClosed
	}
	return nil, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	if db.closed.Get() {
		return false, database.ErrClosed
	}
	_, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, updateError(err)
	}
	return true, closer.Close()
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Get() {
		return nil, database.ErrClosed
	}
	start := time.Now()
	data, closer, err := db.db.Get(key)
	if err != nil {
		return nil, updateError(err)
	}
	db.metrics.getLatency.Observe(float64(time.Since(start)))

	// The value is only valid until closer is released.
	value := slices.Clone(data)
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return updateError(db.db.Set(key, value, db.writeOption()))
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return updateError(db.db.Delete(key, db.writeOption()))
}

func (db *Database) Compact(start []byte, end []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	if end == nil {
		// A nil end means "through the last key".
		it, err := db.db.NewIter(&pebble.IterOptions{})
		if err != nil {
			return updateError(err)
		}
		if it.Last() {
			end = slices.Clone(it.Key())
		}
		if err := it.Close(); err != nil {
			return updateError(err)
		}
		if end == nil {
			return nil
		}
	}
	return updateError(db.db.Compact(start, end, true))
}

func (db *Database) writeOption() *pebble.WriteOptions {
	if db.sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

// updateError casts pebble-specific errors to their database
// equivalents.
func updateError(err error) error {
	switch {
	case errors.Is(err, pebble.ErrNotFound):
		return database.ErrNotFound
	case errors.Is(err, pebble.ErrClosed):
		return database.ErrClosed
	default:
		return err
	}
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	if b.db.closed.Get() {
		return database.ErrClosed
	}
	wb := b.db.db.NewBatch()
	for _, op := range b.Ops {
		if op.Delete {
			if err := wb.Delete(op.Key, nil); err != nil {
				return updateError(err)
			}
			continue
		}
		if err := wb.Set(op.Key, op.Value, nil); err != nil {
			return updateError(err)
		}
	}
	return updateError(wb.Commit(b.db.writeOption()))
}

func (b *batch) Inner() database.Batch {
	return b
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	opts := &pebble.IterOptions{}
	if len(prefix) > 0 {
		opts.LowerBound = prefix
		opts.UpperBound = prefixUpperBound(prefix)
	}
	if len(start) > 0 && (len(prefix) == 0 || string(start) > string(prefix)) {
		opts.LowerBound = start
	}
	it, err := db.db.NewIter(opts)
	if err != nil {
		return &iter{db: db, closed: true, err: updateError(err)}
	}
	return &iter{db: db, iter: it}
}

// prefixUpperBound returns the smallest key strictly greater than every
// key with [prefix].
func prefixUpperBound(prefix []byte) []byte {
	end := slices.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil // all 0xff, no upper bound
}

type iter struct {
	db   *Database
	iter *pebble.Iterator

	initialized bool
	closed      bool
	err         error
}

func (i *iter) Next() bool {
	if i.closed || i.db.closed.Get() {
		i.err = database.ErrClosed
		return false
	}
	if !i.initialized {
		i.initialized = true
		return i.iter.First()
	}
	return i.iter.Next()
}

func (i *iter) Error() error {
	if i.err != nil {
		return i.err
	}
	if i.closed {
		return nil
	}
	return updateError(i.iter.Error())
}

func (i *iter) Key() []byte {
	if i.closed || !i.iter.Valid() {
		return nil
	}
	return i.iter.Key()
}

func (i *iter) Value() []byte {
	if i.closed || !i.iter.Valid() {
		return nil
	}
	return i.iter.Value()
}

func (i *iter) Release() {
	if i.closed {
		return
	}
	i.closed = true
	_ = i.iter.Close()
}
