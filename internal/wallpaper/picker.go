package wallpaper

import (
	cryptorand "crypto/rand"
	"errors"
	"math"
	"math/rand/v2"
)

// DecayFactor is the base of the selection weight f^(-count). Values just
// above 1 keep the bias gentle: an image shown 700 times more than another is
// roughly half as likely to come up.
const DecayFactor = 1.001

// ErrEmptyCollection is returned when asked to pick from no entries.
var ErrEmptyCollection = errors.New("wallpaper: empty collection")

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// Picker performs count-weighted random selection.
type Picker struct {
	src    RandomSource
	factor float64
}

// NewPicker returns a Picker backed by a ChaCha8 generator seeded from the
// operating system's entropy source.
func NewPicker() *Picker {
	var seed [32]byte
	_, _ = cryptorand.Read(seed[:])
	return NewPickerWithSource(rand.New(rand.NewChaCha8(seed)))
}

// NewPickerWithSource returns a Picker drawing from src.
func NewPickerWithSource(src RandomSource) *Picker {
	return &Picker{src: src, factor: DecayFactor}
}

// WithFactor returns a copy of p using factor as the decay base.
func (p *Picker) WithFactor(factor float64) *Picker {
	return &Picker{src: p.src, factor: factor}
}

// Weights returns the unnormalized selection weight of each entry.
func (p *Picker) Weights(entries []Entry) []float64 {
	w := make([]float64, len(entries))
	for i, e := range entries {
		w[i] = math.Pow(p.factor, -float64(e.Count))
	}
	return w
}

// Pick selects one entry with probability proportional to its weight,
// increments its count and returns its name.
func (p *Picker) Pick(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrEmptyCollection
	}
	i := p.choose(p.Weights(entries))
	entries[i].Count++
	return entries[i].Name, nil
}

func (p *Picker) choose(weights []float64) int {
	last := len(weights) - 1
	if last == 0 {
		return 0
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	r := p.src.Float64() * total

	var cum float64
	for i, w := range weights[:last] {
		cum += w
		if cum >= r {
			return i
		}
	}
	// Rounding can leave cum just short of r; the remainder belongs to the
	// last entry.
	return last
}
