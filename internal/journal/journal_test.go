// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/aurman/pkg/types"
)

func testStore(t *testing.T, limit int) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "journal.db")
	store, err := Open(types.JournalConfig{Enabled: true, Path: path, HistoryLimit: limit})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestRecordAndRecent(t *testing.T) {
	store, _ := testStore(t, 0)
	ctx := context.Background()

	ts := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, types.JournalEntry{
		ID: "first", Time: ts, Operation: "search", Packages: []string{"yay"},
		Outcome: types.OutcomeOK, Detail: "4 results",
	}))
	require.NoError(t, store.Record(ctx, types.JournalEntry{
		Operation: "remove", Packages: []string{"yay", "paru"}, Outcome: types.OutcomeFailed,
	}))

	entries, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "remove", entries[0].Operation)
	assert.Equal(t, []string{"yay", "paru"}, entries[0].Packages)
	assert.Equal(t, types.OutcomeFailed, entries[0].Outcome)
	assert.NotEmpty(t, entries[0].ID, "id is generated")
	assert.False(t, entries[0].Time.IsZero(), "time is filled in")

	assert.Equal(t, "first", entries[1].ID)
	assert.True(t, ts.Equal(entries[1].Time))
	assert.Equal(t, "4 results", entries[1].Detail)
}

func TestRecentLimit(t *testing.T) {
	store, _ := testStore(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, types.JournalEntry{
			Operation: fmt.Sprintf("op%d", i), Outcome: types.OutcomeOK,
		}))
	}

	entries, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "op4", entries[0].Operation)
	assert.Equal(t, "op2", entries[2].Operation)

	entries, err = store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestNilPackagesStoredAsEmpty(t *testing.T) {
	store, _ := testStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, types.JournalEntry{Operation: "history", Outcome: types.OutcomeOK}))
	entries, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Packages)
}

func TestReopenKeepsEntries(t *testing.T) {
	store, path := testStore(t, 0)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, types.JournalEntry{Operation: "source", Outcome: types.OutcomeOK}))
	require.NoError(t, store.Close())

	reopened, err := Open(types.JournalConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "source", entries[0].Operation)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(types.JournalConfig{})
	assert.Error(t, err)
}

func TestEmptyJournal(t *testing.T) {
	store, _ := testStore(t, 0)
	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
