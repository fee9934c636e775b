// Package omega models the shared source of randomness: a finite vector of
// independent uniform(0,1) coordinates. Every primitive random variable owns
// exactly one coordinate; sampling realizes all allocated coordinates at once.
package omega

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is the entropy a fresh Universe starts from, so default
// behavior is deterministic.
const DefaultSeed uint64 = 0

// Snapshot is the serializable state of a Universe: how many coordinates
// have been allocated and the entropy the generator was seeded with.
//
// Restoring a snapshot reseeds the generator; it does not rewind a
// partially-consumed stream. The first batch sampled after Restore matches
// the first batch of a fresh stream, not necessarily values seen before the
// snapshot if intervening draws occurred.
type Snapshot struct {
	Coordinates int    `json:"coordinates"`
	Entropy     uint64 `json:"entropy"`
}

// Universe allocates uniform-noise coordinates and produces reproducible
// sample batches of them. It is the only mutable piece of the core.
//
// A Universe is not safe for concurrent use; confine each instance to a
// single goroutine. Random-variable graphs built on top of it are immutable
// and may be shared freely once constructed.
type Universe struct {
	n       int
	entropy uint64
	uniform distuv.Uniform
}

// New creates a Universe seeded with DefaultSeed.
func New() *Universe {
	return NewSeeded(DefaultSeed)
}

// NewSeeded creates a Universe seeded with the given entropy.
func NewSeeded(seed uint64) *Universe {
	u := &Universe{}
	u.Reset(seed)
	return u
}

// Allocate claims the next coordinate index, starting at 0. Called exactly
// once per primitive random variable, in construction order.
func (u *Universe) Allocate() int {
	idx := u.n
	u.n++
	return idx
}

// Coordinates returns the number of coordinates allocated so far.
func (u *Universe) Coordinates() int {
	return u.n
}

// Entropy returns the seed the current generator stream was built from.
func (u *Universe) Entropy() uint64 {
	return u.entropy
}

// Save returns a Snapshot sufficient to Restore an equivalent-but-fresh
// stream later.
func (u *Universe) Save() Snapshot {
	return Snapshot{Coordinates: u.n, Entropy: u.entropy}
}

// Restore re-initializes the Universe from a snapshot: the coordinate count
// is set to the saved value and the generator is reseeded with the saved
// entropy. See Snapshot for the reproducibility contract.
func (u *Universe) Restore(s Snapshot) {
	u.n = s.Coordinates
	u.entropy = s.Entropy
	u.uniform = distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(s.Entropy)}
}

// Reset discards all allocations and reseeds the generator.
func (u *Universe) Reset(seed uint64) {
	u.Restore(Snapshot{Coordinates: 0, Entropy: seed})
}

// Sample realizes every allocated coordinate for the requested output shape:
// the result has one row per coordinate and Width equal to the product of
// the trailing dimensions (1 when shape is absent, i.e. scalar draws).
//
// Draws are coordinate-major: two universes with equal seed, allocations and
// shape produce bit-identical batches. Different shapes interleave the
// generator stream differently, so a batch of shape (k) is not a prefix of a
// batch of shape (k+1); this matches the source design and is an accepted
// limitation.
//
// Sampling consumes generator state: repeated calls yield fresh draws.
func (u *Universe) Sample(shape ...int) (*Batch, error) {
	width := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, NewInvalidShapeError(dim)
		}
		width *= dim
	}

	b := &Batch{
		data:  make([]float64, u.n*width),
		rows:  u.n,
		width: width,
		shape: append([]int(nil), shape...),
	}
	for i := range b.data {
		b.data[i] = u.uniform.Rand()
	}
	return b, nil
}
