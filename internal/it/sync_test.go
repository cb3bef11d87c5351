package it

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktab/internal/engine"
	"quicktab/internal/entity"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
)

func TestConcurrentCreates_BothSurvive(t *testing.T) {
	f := NewFixture(t)
	a := f.StartContext("ctx-a", ownership.KindPage)
	b := f.StartContext("ctx-b", ownership.KindPage)

	var wg sync.WaitGroup
	ids := make([]string, 2)
	wg.Add(2)
	go func() { defer wg.Done(); ids[0] = a.CreateTab(t, "https://a.example") }()
	go func() { defer wg.Done(); ids[1] = b.CreateTab(t, "https://b.example") }()
	wg.Wait()

	// One of the two lost the first race, re-read and committed on top.
	snap := f.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, int64(2), snap.Revision)
	require.Len(t, snap.Entities, 2)
	assert.NotNil(t, snap.Get(ids[0]), "a's entity lost")
	assert.NotNil(t, snap.Get(ids[1]), "b's entity lost")

	f.WaitConverged(2)
}

func TestLifecycle_SingleContext(t *testing.T) {
	f := NewFixture(t)
	a := f.StartContext("ctx-a", ownership.KindPage)

	id := a.CreateTab(t, "https://doc.example")

	ops := []engine.OpRequest{
		{Op: entity.OpMove, EntityID: id, Position: &entity.Position{Left: 120, Top: 80}},
		{Op: entity.OpResize, EntityID: id, Size: &entity.Size{Width: 640, Height: 480}},
		{Op: entity.OpMinimize, EntityID: id},
		{Op: entity.OpRestore, EntityID: id},
		{Op: entity.OpFocus, EntityID: id},
	}
	for _, op := range ops {
		res := <-a.Engine.Apply(context.Background(), op)
		require.NoError(t, res.Err, "op %s", op.Op)
	}

	snap := f.Snapshot()
	require.Equal(t, int64(6), snap.Revision)
	q := snap.Get(id)
	require.NotNil(t, q)
	assert.Equal(t, entity.Position{Left: 120, Top: 80}, q.Position)
	assert.Equal(t, entity.Size{Width: 640, Height: 480}, q.Size)
	assert.False(t, q.Minimized)

	res := <-a.Engine.Apply(context.Background(), engine.OpRequest{Op: entity.OpClose, EntityID: id})
	require.NoError(t, res.Err)
	assert.Empty(t, f.Snapshot().Entities)
}

func TestForeignEntities_InvisibleButConverged(t *testing.T) {
	f := NewFixture(t)
	a := f.StartContext("ctx-a", ownership.KindPage)
	b := f.StartContext("ctx-b", ownership.KindPanel)

	id := a.CreateTab(t, "https://a-only.example")
	for i := 0; i < 3; i++ {
		res := <-a.Engine.Apply(context.Background(), engine.OpRequest{
			Op: entity.OpMove, EntityID: id, Position: &entity.Position{Left: i * 10, Top: i * 10},
		})
		require.NoError(t, res.Err)
	}

	f.WaitConverged(4)
	assert.Empty(t, b.Engine.WorkingSet(), "foreign entity visible to b")
	assert.Zero(t, len(b.Events()), "foreign changes produced events on b")
	assert.Len(t, a.Engine.WorkingSet(), 1)
}

func TestLegacyEntity_FirstMutationClaims(t *testing.T) {
	f := NewFixture(t)

	// A record written before ownership stamping existed.
	snap := entity.NewSnapshot()
	snap.Entities["old"] = &entity.QuickTab{ID: "old", URL: "https://legacy.example"}
	snap.Revision = 1
	snap.SaveID = entity.NewSaveID()
	snap.Seal()
	require.NoError(t, f.Store.CompareAndSet(context.Background(), f.Key(), snap, 0))

	a := f.StartContext("ctx-a", ownership.KindPage)
	b := f.StartContext("ctx-b", ownership.KindPage)

	// Both contexts hydrate the legacy entity.
	require.Len(t, a.Engine.WorkingSet(), 1)
	require.Len(t, b.Engine.WorkingSet(), 1)

	res := <-a.Engine.Apply(context.Background(), engine.OpRequest{Op: entity.OpMinimize, EntityID: "old"})
	require.NoError(t, res.Err)
	assert.Equal(t, "ctx-a", res.Snapshot.Get("old").OwnerContextID)

	// After the claim replicates, b no longer owns it.
	f.WaitConverged(2)
	resB := <-b.Engine.Apply(context.Background(), engine.OpRequest{Op: entity.OpRestore, EntityID: "old"})
	require.Error(t, resB.Err)
	assert.ErrorIs(t, resB.Err, ownership.ErrDenied)
}

func TestManyWriters_NoLostUpdates(t *testing.T) {
	f := NewFixture(t)
	const writers = 4
	const perWriter = 5

	ctxs := make([]*Context, writers)
	for i := 0; i < writers; i++ {
		ctxs[i] = f.StartContext("ctx-"+string(rune('a'+i)), ownership.KindPage)
	}

	var wg sync.WaitGroup
	for _, c := range ctxs {
		wg.Add(1)
		go func(c *Context) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				c.CreateTab(t, "https://"+c.Identity.ContextID+".example")
			}
		}(c)
	}
	wg.Wait()

	snap := f.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, int64(writers*perWriter), snap.Revision)
	assert.Len(t, snap.Entities, writers*perWriter)
	f.WaitConverged(int64(writers * perWriter))

	// Every context sees exactly its own windows.
	for _, c := range ctxs {
		assert.Len(t, c.Engine.WorkingSet(), perWriter, "context %s", c.Identity.ContextID)
	}
}

func TestSQLiteBacked_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quicktab.db")

	sq, err := store.OpenSQLite(path)
	require.NoError(t, err)
	f := NewFixtureOver(t, store.NewChecked(sq, "coord-1"))
	a := f.StartContext("ctx-a", ownership.KindPage)
	id := a.CreateTab(t, "https://durable.example")
	a.Engine.Stop()
	require.NoError(t, sq.Close())

	sq2, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer sq2.Close()
	f2 := NewFixtureOver(t, store.NewChecked(sq2, "coord-1"))
	a2 := f2.StartContext("ctx-a", ownership.KindPage)

	ws := a2.Engine.WorkingSet()
	require.Len(t, ws, 1)
	assert.Equal(t, id, ws[0].ID)
	assert.Equal(t, int64(1), a2.Engine.Ledger().Applied())
}
