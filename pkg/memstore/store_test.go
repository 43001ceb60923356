package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string
	Count int
}

func TestNewIDIsUniqueAndNonEmpty(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestPutGetDelete(t *testing.T) {
	store := New[testRecord]()
	id := NewID()
	store.Put(id, testRecord{ID: id, Count: 1})

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, 1, got.Count)

	require.True(t, store.Delete(id))
	_, ok = store.Get(id)
	assert.False(t, ok)
	assert.False(t, store.Delete(id), "second delete should report absence")
}

func TestListKeepsInsertionOrder(t *testing.T) {
	store := New[testRecord]()
	ids := []string{NewID(), NewID(), NewID()}
	for i, id := range ids {
		store.Put(id, testRecord{ID: id, Count: i})
	}

	listed := store.List()
	require.Len(t, listed, 3)
	for i, record := range listed {
		assert.Equal(t, ids[i], record.ID)
	}

	store.Delete(ids[1])
	listed = store.List()
	require.Len(t, listed, 2)
	assert.Equal(t, ids[0], listed[0].ID)
	assert.Equal(t, ids[2], listed[1].ID)
}

func TestReplaceRequiresExistingRecord(t *testing.T) {
	store := New[testRecord]()
	assert.False(t, store.Replace("missing", testRecord{}))

	id := NewID()
	store.Put(id, testRecord{ID: id, Count: 1})
	require.True(t, store.Replace(id, testRecord{ID: id, Count: 2}))

	got, _ := store.Get(id)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 1, store.Len())
}

func TestMutateIsAtomicUnderConcurrency(t *testing.T) {
	store := New[testRecord]()
	id := NewID()
	store.Put(id, testRecord{ID: id})

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			store.Mutate(id, func(r testRecord) testRecord {
				r.Count++
				return r
			})
		}()
	}
	wg.Wait()

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, workers, got.Count, "no increment may be lost")
}

func TestMutateMissingRecord(t *testing.T) {
	store := New[testRecord]()
	_, ok := store.Mutate("missing", func(r testRecord) testRecord { return r })
	assert.False(t, ok)
}
