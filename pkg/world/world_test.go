package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/exo/internal/config"
	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/math3d"
	"github.com/taigrr/exo/pkg/models"
	"github.com/taigrr/exo/pkg/render"
)

// testConfig is a small, seeded scene.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height = 160, 120
	cfg.Scene.Seed = 7
	cfg.Scene.Stars = 50
	cfg.Scene.Dust = 20
	cfg.Scene.Asteroids = 5
	return cfg
}

// emptyConfig has no scenery and no HUD, leaving only the ship.
func emptyConfig() *config.Config {
	cfg := testConfig()
	cfg.Scene.Stars, cfg.Scene.Dust, cfg.Scene.Asteroids = 0, 0, 0
	cfg.Particles.Draws = 0
	cfg.HUD.Enabled = false
	return cfg
}

func newTestWorld(t *testing.T, cfg *config.Config) (*World, *render.Rasterizer) {
	t.Helper()
	w, err := New(cfg, NewRand(cfg.Scene.Seed), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w, w.NewRasterizer(render.NewFramebuffer(cfg.Render.Width, cfg.Render.Height))
}

func countNot(fb *render.Framebuffer, c render.Color) int {
	n := 0
	for y := range fb.Height {
		for x := range fb.Width {
			if fb.At(x, y) != c {
				n++
			}
		}
	}
	return n
}

func TestNew(t *testing.T) {
	w, r := newTestWorld(t, testConfig())

	if len(w.Stars.Offsets) != 50 || len(w.Dust.Points) != 20 || len(w.Asteroids.Asteroids) != 5 {
		t.Errorf("scenery sizes %d/%d/%d", len(w.Stars.Offsets), len(w.Dust.Points), len(w.Asteroids.Asteroids))
	}
	if w.Hull.Mesh.PolygonCount() != models.HullMesh().PolygonCount() {
		t.Errorf("hull has %d polygons", w.Hull.Mesh.PolygonCount())
	}
	for th, obj := range w.Thrusters {
		if (obj != nil) != (flight.Thrust(th) == flight.Front) {
			t.Errorf("thruster %v present = %v", flight.Thrust(th), obj != nil)
		}
	}
	if r.Backface != render.BackfaceOutline || r.Tolerance != render.DefaultTolerance {
		t.Errorf("rasterizer policy %v tolerance %d", r.Backface, r.Tolerance)
	}
	if !w.Ship.Renormalize {
		t.Error("ship renormalize not taken from config")
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, _ := newTestWorld(t, testConfig())
	b, _ := newTestWorld(t, testConfig())

	for i := range a.Stars.Offsets {
		if a.Stars.Offsets[i] != b.Stars.Offsets[i] {
			t.Fatalf("star %d differs between equal seeds", i)
		}
	}
	for i := range a.Asteroids.Asteroids {
		if a.Asteroids.Asteroids[i].Model != b.Asteroids.Asteroids[i].Model {
			t.Fatalf("asteroid %d differs between equal seeds", i)
		}
	}
}

func TestNewMeshOverride(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(obj, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.Scene.HullMesh = obj
	w, _ := newTestWorld(t, cfg)
	if w.Hull.Mesh.PolygonCount() != 1 {
		t.Errorf("hull override has %d polygons, want 1", w.Hull.Mesh.PolygonCount())
	}

	rock := filepath.Join(dir, "rock.obj")
	if err := os.WriteFile(rock, []byte("v 10 10 10\nv 12 10 10\nv 10 12 12\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Scene.AsteroidMesh = rock
	w, _ = newTestWorld(t, cfg)
	if c := w.Asteroids.Mesh.(*models.Mesh).Center(); c.Len() > 1e-9 {
		t.Errorf("asteroid mesh center = %v, want origin", c)
	}

	cfg.Scene.AsteroidMesh = filepath.Join(dir, "rock.stl")
	if _, err := New(cfg, NewRand(1), nil); !errors.Is(err, models.ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestUpdateFlies(t *testing.T) {
	w, _ := newTestWorld(t, testConfig())
	w.Ship.SetControl(flight.Front, 20)

	for range 120 {
		w.Update(1.0 / 60)
	}

	ship := w.Ship.Position
	if ship.Z >= -1 {
		t.Fatalf("ship did not move forward: %v", ship)
	}
	if cam := w.Camera.Position(); cam.Z <= ship.Z {
		t.Errorf("camera at %v is not trailing the ship at %v", cam, ship)
	}
	if w.Hull.Model != w.Ship.Model() || w.Thrusters[flight.Front].Model != w.Ship.Model() {
		t.Error("hull and thruster models not following the ship")
	}
	if w.Stars.center != w.Camera.Position() {
		t.Error("stars not centered on the camera")
	}
	if len(w.Exhaust.Particles) == 0 {
		t.Error("no exhaust after two seconds of thrust")
	}
}

func TestDrawShip(t *testing.T) {
	w, r := newTestWorld(t, emptyConfig())
	w.Update(1.0 / 60)
	w.Draw(r, 1.0/60)

	if countNot(r.Framebuffer(), w.ClearColor) == 0 {
		t.Error("hull left no pixels")
	}
	if r.Stats.Objects != 1 {
		t.Errorf("drew %d objects, want the hull only", r.Stats.Objects)
	}
}

func TestDrawThrusterWhenFiring(t *testing.T) {
	w, r := newTestWorld(t, emptyConfig())
	w.Ship.SetControl(flight.Front, 20)
	w.Update(1.0 / 60)
	w.Draw(r, 1.0/60)

	if r.Stats.Objects != 2 {
		t.Errorf("drew %d objects, want hull and front thruster", r.Stats.Objects)
	}
}

func TestDrawCountsScenery(t *testing.T) {
	cfg := testConfig()
	cfg.HUD.Enabled = false
	w, r := newTestWorld(t, cfg)
	w.Update(1.0 / 60)
	w.Draw(r, 1.0/60)

	if want := 1 + len(w.Asteroids.Asteroids); r.Stats.Objects != want {
		t.Errorf("objects = %d, want %d", r.Stats.Objects, want)
	}
	if min := len(w.Stars.Offsets) + len(w.Dust.Points); r.Stats.Points < min {
		t.Errorf("points = %d, want at least %d", r.Stats.Points, min)
	}
}

func TestDrawFadesWhileJumping(t *testing.T) {
	cfg := emptyConfig()
	cfg.Ship.JumpChargeTime = 0.01
	w, r := newTestWorld(t, cfg)

	w.Ship.StartJumpCharge()
	w.Update(0.02)
	if w.Ship.JumpState() != flight.Jumping {
		t.Fatalf("state %v, want jumping", w.Ship.JumpState())
	}

	fb := r.Framebuffer()
	fb.Clear(render.White)
	w.Draw(r, 0.02)

	// The corner is far from the hull; it keeps a dimmed copy of the
	// previous frame instead of being cleared.
	if c := fb.At(0, 0); c.R() == 0 || c.R() == 0xff {
		t.Errorf("corner %08x, want faded white", uint32(c))
	}
	if d := r.Depth(0, 0); d != r.Depth(-1, -1) {
		t.Errorf("depth at corner %v, want cleared", d)
	}

	w.Ship.EndJump()
	w.Update(0.02)
	w.Draw(r, 0.02)
	if c := fb.At(0, 0); c != w.ClearColor {
		t.Errorf("corner %08x after jump, want clear color", uint32(c))
	}
}

func TestDebugAxes(t *testing.T) {
	w, r := newTestWorld(t, emptyConfig())
	w.DebugAxes = true
	w.Update(1.0 / 60)
	// The axes sit inside the hull; move the hull behind the camera.
	w.Hull.Model = math3d.Translate(math3d.V3(0, 0, 1000))
	w.Draw(r, 0)

	fb := r.Framebuffer()
	found := map[render.Color]bool{}
	for y := range fb.Height {
		for x := range fb.Width {
			found[fb.At(x, y)] = true
		}
	}
	for _, c := range []render.Color{render.Red, render.Green, render.Blue} {
		if !found[c] {
			t.Errorf("axis color %08x not drawn", uint32(c))
		}
	}
}

func TestNewRand(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		if a.Uint64() != b.Uint64() {
			t.Fatal("equal seeds diverged")
		}
	}
}

func BenchmarkWorldFrame(b *testing.B) {
	cfg := config.Default()
	cfg.Scene.Seed = 1
	w, err := New(cfg, NewRand(cfg.Scene.Seed), nil)
	if err != nil {
		b.Fatal(err)
	}
	r := w.NewRasterizer(render.NewFramebuffer(cfg.Render.Width, cfg.Render.Height))
	w.Ship.SetControl(flight.Front, 20)
	for b.Loop() {
		w.Update(1.0 / 60)
		w.Draw(r, 1.0/60)
	}
}
