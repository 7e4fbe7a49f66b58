package particles

import (
	"math"
	"math/rand"
)

const (
	repulsionRadius   = 100.0
	repulsionStrength = 0.02
	damping           = 0.99
	maxVelocity       = 2.0
	minSize           = 15.0
	maxSize           = 35.0
)

// Particle is one decorative sprite. Positions are in the same coordinate
// space as the simulation bounds; rotation is in degrees.
type Particle struct {
	X             float64
	Y             float64
	VX            float64
	VY            float64
	Size          float64
	Rotation      float64
	RotationSpeed float64
}

// Pointer is an optional repulsion source (typically a cursor position).
type Pointer struct {
	X float64
	Y float64
}

// Sim is a fixed-timestep particle simulation decoupled from any rendering
// surface. It is not safe for concurrent use.
type Sim struct {
	width     float64
	height    float64
	particles []Particle
}

// New creates a simulation with count particles scattered uniformly over a
// width x height area. The same seed always produces the same initial state.
func New(count int, width, height float64, seed int64) *Sim {
	rng := rand.New(rand.NewSource(seed))
	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = Particle{
			X:             rng.Float64() * width,
			Y:             rng.Float64() * height,
			VX:            (rng.Float64() - 0.5) * 0.5,
			VY:            (rng.Float64() - 0.5) * 0.5,
			Size:          rng.Float64()*(maxSize-minSize) + minSize,
			Rotation:      rng.Float64() * 360,
			RotationSpeed: (rng.Float64() - 0.5) * 2,
		}
	}
	return &Sim{width: width, height: height, particles: particles}
}

// Resize changes the bounds and rescatters every particle, mirroring a
// viewport resize. The rng argument keeps rescattering reproducible.
func (s *Sim) Resize(width, height float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	s.width = width
	s.height = height
	for i := range s.particles {
		s.particles[i].X = rng.Float64() * width
		s.particles[i].Y = rng.Float64() * height
	}
}

// Step advances the simulation by dt timesteps (dt=1 is one animation frame).
// A non-nil pointer repels particles within repulsionRadius; velocity is
// damped and clamped before positions integrate. Particles leaving a bound
// wrap to the opposite edge, offset by their own size.
func (s *Sim) Step(dt float64, pointer *Pointer) []Particle {
	for i := range s.particles {
		p := &s.particles[i]

		if pointer != nil {
			dx := p.X - pointer.X
			dy := p.Y - pointer.Y
			distance := math.Hypot(dx, dy)
			if distance > 0 && distance < repulsionRadius {
				force := (repulsionRadius - distance) / repulsionRadius
				p.VX += (dx / distance) * force * repulsionStrength * dt
				p.VY += (dy / distance) * force * repulsionStrength * dt
			}
		}

		factor := math.Pow(damping, dt)
		p.VX *= factor
		p.VY *= factor

		velocity := math.Hypot(p.VX, p.VY)
		if velocity > maxVelocity {
			p.VX = (p.VX / velocity) * maxVelocity
			p.VY = (p.VY / velocity) * maxVelocity
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation += p.RotationSpeed * dt

		if p.X > s.width+p.Size {
			p.X = -p.Size
		}
		if p.X < -p.Size {
			p.X = s.width + p.Size
		}
		if p.Y > s.height+p.Size {
			p.Y = -p.Size
		}
		if p.Y < -p.Size {
			p.Y = s.height + p.Size
		}
	}
	return s.particles
}

// Particles returns the current particle states without advancing time.
func (s *Sim) Particles() []Particle {
	return s.particles
}
