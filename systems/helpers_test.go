package systems

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

// fakeSource is a scripted input source.
type fakeSource struct {
	delta mgl64.Vec2
	held  map[cfg.ActionID]bool
}

func (f *fakeSource) PointerDelta() mgl64.Vec2 { return f.delta }

func (f *fakeSource) Pressed(action cfg.ActionID) bool { return f.held[action] }

func (f *fakeSource) hold(actions ...cfg.ActionID) {
	if f.held == nil {
		f.held = map[cfg.ActionID]bool{}
	}
	for _, a := range actions {
		f.held[a] = true
	}
}

type testWorld struct {
	w      donburi.World
	source *fakeSource
}

// newTestWorld creates a world with a clock, an input source and an empty
// collision space, and restores config defaults when the test ends.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	tw := &testWorld{w: donburi.NewWorld(), source: &fakeSource{}}
	factory.CreateClock(tw.w)
	factory.CreateInput(tw.w, tw.source)
	factory.CreateSpace(tw.w)
	return tw
}

// spawn creates a grounded player at pos with a bound camera.
func (tw *testWorld) spawn(pos mgl64.Vec3, offset mgl64.Vec3, source cfg.RotationSource) (player, camera *donburi.Entry) {
	player = factory.CreatePlayer(tw.w, pos)
	camera = factory.CreateCamera(tw.w, player, offset, source)
	return player, camera
}

func (tw *testWorld) tick(systems ...System) {
	Run(tw.w, frame, systems)
}

func grounded(x, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, cfg.Physics.FloorHeight + cfg.Physics.PlayerHalfHeight, z}
}

func approxVec(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	if !want.ApproxEqualThreshold(got, 1e-6) {
		assert.Fail(t, fmt.Sprintf("got %v, want %v", got, want), msgAndArgs...)
	}
}

// requirePanicIs runs fn and requires it to panic with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
}

func facingOf(e *donburi.Entry) *components.FacingData {
	return components.Facing.Get(e)
}

func donburiWorldWithFacing(yaw, pitch float64) donburi.World {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Facing))
	components.Facing.SetValue(e, components.FacingData{Yaw: yaw, Pitch: pitch, Sensitivity: cfg.Orientation.Sensitivity})
	return w
}

func factoryCamera(tw *testWorld, target *donburi.Entry, offset mgl64.Vec3, source cfg.RotationSource) *donburi.Entry {
	return factory.CreateCamera(tw.w, target, offset, source)
}
