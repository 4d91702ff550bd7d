// Package save writes the game state to disk and restores it.
//
// A save bundle is two independent files in one directory: the galaxy and
// the player profile. The shipyard is never saved; Load rebuilds it from the
// embedded ship resource.
package save

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/gemini/internal/astronomicals"
	"github.com/mesh-intelligence/gemini/internal/game"
	"github.com/mesh-intelligence/gemini/internal/player"
)

// File names inside the save directory.
const (
	GalaxyFile = "galaxy.cbor"
	PlayerFile = "player.cbor"
)

// ErrNoSavedGame is returned by Load when no complete bundle can be read.
var ErrNoSavedGame = errors.New("no saved game")

// Operation names passed to a Recorder.
const (
	OpSaveAll    = "save_all"
	OpSavePlayer = "save_player"
	OpLoad       = "load"
)

// Outcomes passed to a Recorder.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
	OutcomeNoSave = "no_save"
)

// Recorder receives the outcome of every persistence operation.
type Recorder interface {
	RecordOperation(ctx context.Context, operation, outcome, detail string) error
}

// Manager saves and loads game state in one directory. It keeps no state
// between calls and is safe for concurrent use.
type Manager struct {
	dir string
	log *slog.Logger
	rec Recorder
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithRecorder reports each operation's outcome to r.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) {
		m.rec = r
	}
}

// NewManager returns a Manager for the save directory dir. The directory is
// created on the first save.
func NewManager(dir string, opts ...Option) *Manager {
	m := &Manager{dir: dir, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the save directory.
func (m *Manager) Dir() string { return m.dir }

// Exists reports whether both files of a bundle are present. It does not
// check that they decode.
func (m *Manager) Exists() bool {
	return exists(m.path(GalaxyFile)) && exists(m.path(PlayerFile))
}

// SaveAll writes the galaxy and the player profile. Each subsystem's guard is
// held only while it is encoded in memory. Both files are staged before
// either replaces the previous bundle.
func (m *Manager) SaveAll(ctx context.Context, g *game.Game) (err error) {
	defer func() { m.record(ctx, OpSaveAll, err) }()

	if err := m.ensureDir(); err != nil {
		return err
	}

	galaxy, err := encodeGuarded(g.Galaxy)
	if err != nil {
		return fmt.Errorf("encode galaxy: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	profile, err := encodeGuarded(g.Player)
	if err != nil {
		return fmt.Errorf("encode player: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeBundle([]bundleFile{
		{path: m.path(GalaxyFile), data: galaxy},
		{path: m.path(PlayerFile), data: profile},
	})
}

// SavePlayer writes only the player profile.
func (m *Manager) SavePlayer(ctx context.Context, g *game.Game) (err error) {
	defer func() { m.record(ctx, OpSavePlayer, err) }()

	if err := m.ensureDir(); err != nil {
		return err
	}

	profile, err := encodeGuarded(g.Player)
	if err != nil {
		return fmt.Errorf("encode player: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeBundle([]bundleFile{{path: m.path(PlayerFile), data: profile}})
}

// Load restores a game from the bundle. The galaxy and player files are read
// independently; a game is returned only when both decode, otherwise the
// error wraps ErrNoSavedGame. The shipyard always comes from the embedded
// ship resource, and Load panics if that resource does not decode.
func (m *Manager) Load(ctx context.Context) (g *game.Game, err error) {
	defer func() { m.record(ctx, OpLoad, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	galaxy, galaxyErr := readFile[astronomicals.Galaxy](m.path(GalaxyFile))
	profile, playerErr := readFile[player.Player](m.path(PlayerFile))
	shipyard := game.StockShipyard()

	if err := errors.Join(galaxyErr, playerErr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSavedGame, err)
	}
	return game.Restore(galaxy, shipyard, profile), nil
}

func (m *Manager) ensureDir() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	return nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name)
}

// record logs the outcome of op and forwards it to the recorder. A recorder
// failure is logged and otherwise ignored.
func (m *Manager) record(ctx context.Context, op string, opErr error) {
	outcome, detail := OutcomeOK, ""
	switch {
	case errors.Is(opErr, ErrNoSavedGame):
		outcome, detail = OutcomeNoSave, opErr.Error()
	case opErr != nil:
		outcome, detail = OutcomeFailed, opErr.Error()
	}

	if opErr != nil {
		m.log.Debug("persistence operation did not complete", "op", op, "outcome", outcome, "error", opErr)
	} else {
		m.log.Debug("persistence operation complete", "op", op, "dir", m.dir)
	}

	if m.rec == nil {
		return
	}
	if err := m.rec.RecordOperation(context.WithoutCancel(ctx), op, outcome, detail); err != nil {
		m.log.Warn("record persistence operation", "op", op, "error", err)
	}
}
