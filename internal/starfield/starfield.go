// Package starfield generates the decorative star field behind the hero and
// tracks the one-shot reveal transition of a page mount.
package starfield

import (
	"math/rand/v2"
	"strconv"
	"sync"
)

// PointCount is the number of stars drawn per mount.
const PointCount = 50

// MaxDelaySeconds bounds the animation delay of a single star.
const MaxDelaySeconds = 2.0

// Point is a single decorative star. Values are ready to drop into an
// inline style attribute.
type Point struct {
	Top   string `json:"top"`
	Left  string `json:"left"`
	Delay string `json:"delay"`
}

// Generator draws star positions from a pseudo-random source.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a Generator with a fixed seed, for tests and
// reproducible exports.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate returns PointCount independently drawn points. Top and Left are
// uniform in [0,100) percent, Delay is uniform in [0,2) seconds.
func (g *Generator) Generate() []Point {
	g.mu.Lock()
	defer g.mu.Unlock()

	points := make([]Point, PointCount)
	for i := range points {
		points[i] = Point{
			Top:   percent(g.rng.Float64() * 100),
			Left:  percent(g.rng.Float64() * 100),
			Delay: seconds(g.rng.Float64() * MaxDelaySeconds),
		}
	}
	return points
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

// Mount is the transient state of one page mount: the one-way reveal flag
// and the star positions. The zero value is hidden with no stars.
type Mount struct {
	mu       sync.Mutex
	revealed bool
	points   []Point
}

// Initialize reveals the hero and draws the star field. Only the first call
// has an effect; it reports whether this call performed the transition.
func (m *Mount) Initialize(g *Generator) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.revealed {
		return false
	}
	m.points = g.Generate()
	m.revealed = true
	return true
}

// Revealed reports whether Initialize has run.
func (m *Mount) Revealed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revealed
}

// Points returns a copy of the drawn stars, empty before Initialize.
func (m *Mount) Points() []Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Point(nil), m.points...)
}
