package filmstrip

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/choreo"
)

// stagedScene returns a scene holding one red actor mid-move, ticked to a
// known time.
func stagedScene(t *testing.T) *choreo.Scene {
	t.Helper()

	actor := choreo.NewActor()
	actor.Color = choreo.RGB{R: 255, G: 0, B: 0}
	require.NoError(t, actor.Act(choreo.Move{Dest: choreo.Vec2{X: 100, Y: 60}}, 2))

	scene := choreo.NewScene().WithClock(&choreo.ScriptedClock{Intervals: []float64{1}})
	scene.Add(choreo.DefaultGroup, actor)
	require.NoError(t, scene.Update())
	return scene
}

func TestFilmstrip_RenderDrawsActor(t *testing.T) {
	scene := stagedScene(t)

	fs := New(DefaultConfig())
	img := fs.Render(scene)

	// At t=1 the actor sits at (50, 30); its square is filled with its color.
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.At(51, 31))

	// Far corner stays background.
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.At(310, 230))
}

func TestFilmstrip_RenderClampsColor(t *testing.T) {
	actor := choreo.NewActor()
	actor.Color = choreo.RGB{R: 300, G: -20, B: 0}
	actor.Position = choreo.Vec2{X: 10, Y: 30}

	scene := choreo.NewScene().WithClock(&choreo.ScriptedClock{})
	scene.Add(choreo.DefaultGroup, actor)

	img := New(DefaultConfig()).Render(scene)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.At(11, 31))
}

func TestFilmstrip_CaptureWritesSequence(t *testing.T) {
	scene := stagedScene(t)

	config := DefaultConfig()
	config.OutputDir = t.TempDir()
	fs := New(config)

	first, err := fs.Capture(scene, "opening")
	require.NoError(t, err)
	assert.Equal(t, "frame_0000_opening.png", filepath.Base(first))

	second, err := fs.Capture(scene, "hold")
	require.NoError(t, err)
	assert.Equal(t, "frame_0001_hold.png", filepath.Base(second))
}

// TestScriptSupervisor_DeterministicTakes renders the same staged scene
// twice and expects pixel-identical frames; a scene ticked further must
// differ.
func TestScriptSupervisor_DeterministicTakes(t *testing.T) {
	fs := New(DefaultConfig())
	ss := NewScriptSupervisor(0)

	take1 := fs.Render(stagedScene(t))
	take2 := fs.Render(stagedScene(t))
	assert.Equal(t, 0.0, ss.Compare(take1, take2))

	moved := stagedScene(t)
	require.NoError(t, moved.Update())
	take3 := fs.Render(moved)
	assert.Greater(t, ss.Compare(take1, take3), 0.0)
}

func TestScriptSupervisor_ValidateTake(t *testing.T) {
	config := DefaultConfig()
	config.OutputDir = t.TempDir()
	fs := New(config)

	baseline, err := fs.Capture(stagedScene(t), "baseline")
	require.NoError(t, err)
	current, err := fs.Capture(stagedScene(t), "current")
	require.NoError(t, err)

	ss := NewScriptSupervisor(0)
	assert.NoError(t, ss.ValidateTake(baseline, current))

	moved := stagedScene(t)
	require.NoError(t, moved.Update())
	divergent, err := fs.Capture(moved, "divergent")
	require.NoError(t, err)
	assert.Error(t, ss.ValidateTake(baseline, divergent))
}
