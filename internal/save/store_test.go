package save

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/model"
)

func sampleSave() *SaveData {
	return &SaveData{
		NextCardID: 4,
		NextSlotID: 2,
		Cards: []CardRecord{
			{ID: 1, Desc: "creature.wolf", Kind: model.KindCreature},
			{ID: 3, Desc: "resource.iron", Kind: model.KindResource},
		},
		Slots: []SlotRecord{
			{ID: 1, Pos: model.Point{X: 2, Y: 3}, Cards: []model.CardID{1, 3}},
		},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "saves", "table.json"))
	require.NoError(t, err)

	// Nothing saved yet.
	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, sampleSave()))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleSave(), got)
}

func TestFileStore_OverwriteKeepsLatest(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "table.json"))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, sampleSave()))

	updated := sampleSave()
	updated.NextCardID = 99
	require.NoError(t, store.Save(ctx, updated))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.CardID(99), got.NextCardID)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, sampleSave()))

	updated := sampleSave()
	updated.NextCardID = 50
	require.NoError(t, store.Save(ctx, updated))

	// Load returns the newest snapshot; history is kept.
	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.CardID(50), got.NextCardID)

	n, err := store.SnapshotCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSQLiteStore_Prune(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	defer store.Close()

	for i := 0; i < 5; i++ {
		data := sampleSave()
		data.NextCardID = model.CardID(10 + i)
		require.NoError(t, store.Save(ctx, data))
	}

	require.NoError(t, store.Prune(ctx, 2))

	n, err := store.SnapshotCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.CardID(14), got.NextCardID)
}
