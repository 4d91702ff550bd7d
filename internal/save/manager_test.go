package save

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gemini/internal/astronomicals"
	"github.com/mesh-intelligence/gemini/internal/game"
	"github.com/mesh-intelligence/gemini/internal/player"
	"github.com/mesh-intelligence/gemini/internal/ship"
)

func sampleGalaxy() astronomicals.Galaxy {
	star := astronomicals.NewStar(1.0, 1.0, 0.0122)
	return astronomicals.NewGalaxy(
		[]astronomicals.Body{
			{ID: "sys-000", Name: "Sol", Kind: astronomicals.KindSystem, Star: &star},
			{ID: "sys-000-p0", Name: "Sol I", Kind: astronomicals.KindPlanet, Orbit: "sys-000"},
			{ID: "sys-001", Name: "Vega", Kind: astronomicals.KindSystem},
		},
		[]astronomicals.Edge{{From: "sys-000", To: "sys-001", Distance: 25.04}},
	)
}

func samplePlayer() player.Player {
	return player.Player{
		ID:       "0190a5b2-0000-7000-8000-000000000001",
		Name:     "Ada",
		Credits:  31337,
		Location: "sys-000-p0",
		Ship:     "Mule",
	}
}

func snapshot[V any](g game.Guarded[V]) V {
	return game.Read(g, func(v *V) V { return *v })
}

func TestCodecRoundTrip(t *testing.T) {
	t.Run("galaxy", func(t *testing.T) {
		want := sampleGalaxy()
		data, err := Marshal(want)
		require.NoError(t, err)

		var got astronomicals.Galaxy
		require.NoError(t, Unmarshal(data, &got))
		assert.Equal(t, want, got)
	})

	t.Run("empty galaxy", func(t *testing.T) {
		want := astronomicals.NewGalaxy(nil, nil)
		data, err := Marshal(want)
		require.NoError(t, err)

		var got astronomicals.Galaxy
		require.NoError(t, Unmarshal(data, &got))
		assert.Equal(t, want, got)
		assert.Empty(t, got.Bodies)
	})

	t.Run("player", func(t *testing.T) {
		want := samplePlayer()
		data, err := Marshal(want)
		require.NoError(t, err)

		var got player.Player
		require.NoError(t, Unmarshal(data, &got))
		assert.Equal(t, want, got)
	})
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	type futurePlayer struct {
		ID         string `cbor:"id"`
		Name       string `cbor:"name"`
		Credits    int64  `cbor:"credits"`
		Reputation int    `cbor:"reputation"`
	}
	data, err := Marshal(futurePlayer{ID: "x", Name: "Ada", Credits: 5, Reputation: 9})
	require.NoError(t, err)

	var got player.Player
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, player.Player{ID: "x", Name: "Ada", Credits: 5}, got)
}

func TestSaveAllThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gemini", "saves")
	m := NewManager(dir)
	ctx := context.Background()

	g := game.Restore(sampleGalaxy(), ship.NewShipyard(), samplePlayer())
	// Catalog contents before the save must not matter.
	g.Shipyard.With(func(s *ship.Shipyard) {
		s.Ships = []ship.Characteristics{{Name: "Homebrew"}}
	})

	require.NoError(t, m.SaveAll(ctx, g))
	assert.FileExists(t, filepath.Join(dir, GalaxyFile))
	assert.FileExists(t, filepath.Join(dir, PlayerFile))
	assert.True(t, m.Exists())

	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, sampleGalaxy(), snapshot(loaded.Galaxy))
	assert.Equal(t, samplePlayer(), snapshot(loaded.Player))
	assert.Equal(t, game.StockShipyard(), snapshot(loaded.Shipyard))
}

func TestSaveAllEmptyGame(t *testing.T) {
	m := NewManager(t.TempDir())
	ctx := context.Background()

	g := game.New()
	require.NoError(t, m.SaveAll(ctx, g))

	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot(g.Galaxy), snapshot(loaded.Galaxy))
	assert.Equal(t, snapshot(g.Player), snapshot(loaded.Player))
}

func TestLoadWithoutBundle(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing"))

	g, err := m.Load(context.Background())
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrNoSavedGame)
	assert.False(t, m.Exists())
}

func TestLoadIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name  string
		spoil func(t *testing.T, dir string)
	}{
		{
			name: "player file missing",
			spoil: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(filepath.Join(dir, PlayerFile)))
			},
		},
		{
			name: "player file corrupt",
			spoil: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, PlayerFile), []byte("definitely not cbor"), 0o644))
			},
		},
		{
			name: "player file empty",
			spoil: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, PlayerFile), nil, 0o644))
			},
		},
		{
			name: "galaxy file missing",
			spoil: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(filepath.Join(dir, GalaxyFile)))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			m := NewManager(dir)
			ctx := context.Background()

			require.NoError(t, m.SaveAll(ctx, game.Restore(sampleGalaxy(), ship.NewShipyard(), samplePlayer())))
			tt.spoil(t, dir)

			g, err := m.Load(ctx)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrNoSavedGame)
		})
	}
}

func TestSavePlayerOnlyTouchesProfile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	ctx := context.Background()

	g := game.Restore(sampleGalaxy(), ship.NewShipyard(), samplePlayer())
	require.NoError(t, m.SaveAll(ctx, g))

	// Change both subsystems; only the player should reach disk.
	g.Galaxy.With(func(gal *astronomicals.Galaxy) { gal.Bodies = nil; gal.Edges = nil })
	g.Player.With(func(p *player.Player) { p.Credits = 7 })
	require.NoError(t, m.SavePlayer(ctx, g))

	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleGalaxy(), snapshot(loaded.Galaxy))
	assert.EqualValues(t, 7, snapshot(loaded.Player).Credits)
}

func TestSavePlayerWithoutGalaxyIsNotLoadable(t *testing.T) {
	m := NewManager(t.TempDir())
	ctx := context.Background()

	require.NoError(t, m.SavePlayer(ctx, game.New()))

	_, err := m.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSavedGame)
}

func TestConcurrentSavePlayer(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	ctx := context.Background()

	const writers, rounds = 2, 50
	names := make(map[string]bool)
	games := make([]*game.Game, writers)
	for i := range games {
		p := samplePlayer()
		p.Name = fmt.Sprintf("writer-%d-%s", i, strings.Repeat("x", 4096*(i+1)))
		names[p.Name] = true
		games[i] = game.Restore(sampleGalaxy(), ship.NewShipyard(), p)
	}
	require.NoError(t, m.SaveAll(ctx, games[0]))

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(g *game.Game) {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				assert.NoError(t, m.SavePlayer(ctx, g))
			}
		}(games[i])
	}
	wg.Wait()

	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, names[snapshot(loaded.Player).Name], "profile holds neither writer's data")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestSaveAllFailsWhenDirCannotBeCreated(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	m := NewManager(filepath.Join(blocker, "saves"))
	err := m.SaveAll(context.Background(), game.New())
	assert.Error(t, err)
}

func TestSaveAllHonorsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SaveAll(ctx, game.New())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, GalaxyFile))
	assert.NoFileExists(t, filepath.Join(dir, PlayerFile))
}

type recordedOp struct {
	operation, outcome string
}

type fakeRecorder struct {
	mu  sync.Mutex
	ops []recordedOp
}

func (r *fakeRecorder) RecordOperation(_ context.Context, operation, outcome, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, recordedOp{operation, outcome})
	return nil
}

func TestRecorderSeesOutcomes(t *testing.T) {
	rec := &fakeRecorder{}
	m := NewManager(t.TempDir(), WithRecorder(rec))
	ctx := context.Background()

	_, _ = m.Load(ctx)
	require.NoError(t, m.SaveAll(ctx, game.New()))
	require.NoError(t, m.SavePlayer(ctx, game.New()))
	_, err := m.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []recordedOp{
		{OpLoad, OutcomeNoSave},
		{OpSaveAll, OutcomeOK},
		{OpSavePlayer, OutcomeOK},
		{OpLoad, OutcomeOK},
	}, rec.ops)
}
