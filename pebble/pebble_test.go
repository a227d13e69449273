// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func TestDatabase(t *testing.T) {
	require := require.New(t)
	db, _, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)

	k, v := randBytes(), randBytes()
	require.NoError(db.Put(k, v))

	got, err := db.Get(k)
	require.NoError(err)
	require.Equal(v, got)

	has, err := db.Has(randBytes())
	require.NoError(err)
	require.False(has)

	require.NoError(db.Delete(k))
	_, err = db.Get(k)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Close())
	require.ErrorIs(db.Put(k, v), database.ErrClosed)
}

func TestBatchReplay(t *testing.T) {
	require := require.New(t)
	db, _, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)
	defer func() {
		require.NoError(db.Close())
	}()

	k1, v1 := randBytes(), randBytes()
	k2 := randBytes()
	require.NoError(db.Put(k2, randBytes()))

	b := db.NewBatch()
	require.NoError(b.Put(k1, v1))
	require.NoError(b.Delete(k2))
	require.NoError(b.Write())

	got, err := db.Get(k1)
	require.NoError(err)
	require.Equal(v1, got)
	_, err = db.Get(k2)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestIteratorWithPrefix(t *testing.T) {
	require := require.New(t)
	db, _, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)
	defer func() {
		require.NoError(db.Close())
	}()

	require.NoError(db.Put([]byte{0x0, 0x1}, []byte("a")))
	require.NoError(db.Put([]byte{0x0, 0x2}, []byte("b")))
	require.NoError(db.Put([]byte{0x1, 0x1}, []byte("c")))

	it := db.NewIteratorWithPrefix([]byte{0x0})
	defer it.Release()

	count := 0
	for it.Next() {
		require.Equal(byte(0x0), it.Key()[0])
		count++
	}
	require.NoError(it.Error())
	require.Equal(2, count)
}

func BenchmarkBatchInsertion(b *testing.B) {
	const batchSize = 10_000
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(b.TempDir(), cfg)
			if err != nil {
				b.Fatal(err)
			}

			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for j := 0; j < batchSize; j++ {
					if err := batch.Put(keys[j], randBytes()); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
