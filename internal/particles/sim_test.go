package particles

import (
	"math"
	"testing"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(24, 800, 600, 42)
	b := New(24, 800, 600, 42)

	pa, pb := a.Particles(), b.Particles()
	if len(pa) != 24 || len(pb) != 24 {
		t.Fatalf("expected 24 particles, got %d and %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs between identically seeded sims: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestNewBounds(t *testing.T) {
	sim := New(50, 800, 600, 7)
	for i, p := range sim.Particles() {
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Errorf("particle %d spawned out of bounds: (%v, %v)", i, p.X, p.Y)
		}
		if p.Size < minSize || p.Size > maxSize {
			t.Errorf("particle %d size %v outside [%v, %v]", i, p.Size, minSize, maxSize)
		}
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Errorf("particle %d initial velocity too large: (%v, %v)", i, p.VX, p.VY)
		}
	}
}

func TestStepIntegratesPosition(t *testing.T) {
	sim := New(1, 800, 600, 1)
	p := &sim.Particles()[0]
	p.X, p.Y = 400, 300
	p.VX, p.VY = 1, 0
	p.RotationSpeed = 2
	rotation := p.Rotation

	sim.Step(1, nil)

	got := sim.Particles()[0]
	// velocity is damped before integration
	wantX := 400 + 1*damping
	if math.Abs(got.X-wantX) > 1e-9 {
		t.Errorf("X = %v, want %v", got.X, wantX)
	}
	if math.Abs(got.Y-300) > 1e-9 {
		t.Errorf("Y = %v, want 300", got.Y)
	}
	if math.Abs(got.Rotation-(rotation+2)) > 1e-9 {
		t.Errorf("Rotation = %v, want %v", got.Rotation, rotation+2)
	}
}

func TestStepPointerRepulsion(t *testing.T) {
	sim := New(1, 800, 600, 1)
	p := &sim.Particles()[0]
	p.X, p.Y = 430, 300
	p.VX, p.VY = 0, 0

	// pointer 30px to the left, inside the repulsion radius
	sim.Step(1, &Pointer{X: 400, Y: 300})

	got := sim.Particles()[0]
	if got.VX <= 0 {
		t.Errorf("particle should be pushed away from the pointer, VX = %v", got.VX)
	}
	if got.VY != 0 {
		t.Errorf("no vertical offset, so VY should stay 0, got %v", got.VY)
	}
}

func TestStepPointerOutOfRange(t *testing.T) {
	sim := New(1, 800, 600, 1)
	p := &sim.Particles()[0]
	p.X, p.Y = 700, 300
	p.VX, p.VY = 0, 0

	sim.Step(1, &Pointer{X: 100, Y: 300})

	got := sim.Particles()[0]
	if got.VX != 0 || got.VY != 0 {
		t.Errorf("pointer beyond the radius must not impart force, got (%v, %v)", got.VX, got.VY)
	}
}

func TestStepClampsVelocity(t *testing.T) {
	sim := New(1, 800, 600, 1)
	p := &sim.Particles()[0]
	p.X, p.Y = 400, 300
	p.VX, p.VY = 10, 10

	sim.Step(1, nil)

	got := sim.Particles()[0]
	speed := math.Hypot(got.VX, got.VY)
	if speed > maxVelocity+1e-9 {
		t.Errorf("speed %v exceeds max %v", speed, maxVelocity)
	}
}

func TestStepWrapsEdges(t *testing.T) {
	sim := New(1, 800, 600, 1)
	p := &sim.Particles()[0]
	p.Size = 20
	p.X, p.Y = 821, 300 // past width + size
	p.VX, p.VY = 0, 0
	p.RotationSpeed = 0

	sim.Step(1, nil)

	got := sim.Particles()[0]
	if got.X != -20 {
		t.Errorf("X should wrap to -size, got %v", got.X)
	}

	p = &sim.Particles()[0]
	p.Y = -21
	sim.Step(1, nil)
	got = sim.Particles()[0]
	if got.Y != 620 {
		t.Errorf("Y should wrap to height+size, got %v", got.Y)
	}
}

func TestStepSameSeedSameTrajectory(t *testing.T) {
	a := New(10, 800, 600, 99)
	b := New(10, 800, 600, 99)

	for i := 0; i < 100; i++ {
		a.Step(1, &Pointer{X: 400, Y: 300})
		b.Step(1, &Pointer{X: 400, Y: 300})
	}
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("trajectories diverged at particle %d after 100 steps", i)
		}
	}
}
