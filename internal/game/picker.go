package game

import (
	"math/rand/v2"
	"time"

	"primers/internal/domain"
)

// Picker chooses the secret number.
type Picker interface {
	// Pick returns a number within r (inclusive).
	Pick(r domain.Range) uint32
}

// RandPicker picks uniformly from a PCG stream.
type RandPicker struct {
	rng *rand.Rand
}

// NewRandPicker returns a picker seeded with seed. The same seed always
// yields the same sequence of secrets.
func NewRandPicker(seed uint64) *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededPicker returns a picker seeded from the wall clock.
func NewTimeSeededPicker() *RandPicker {
	return NewRandPicker(uint64(time.Now().UnixNano()))
}

func (p *RandPicker) Pick(r domain.Range) uint32 {
	span := uint64(r.Max-r.Min) + 1
	return r.Min + uint32(p.rng.Uint64N(span))
}

// Fixed always picks the same number.
type Fixed uint32

func (f Fixed) Pick(domain.Range) uint32 { return uint32(f) }
