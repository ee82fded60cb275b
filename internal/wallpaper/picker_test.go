package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource []float64

func (s *fixedSource) Float64() float64 {
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}

func entries(counts ...uint64) []Entry {
	names := []string{"a.png", "b.png", "c.png", "d.png", "e.png"}
	out := make([]Entry, len(counts))
	for i, c := range counts {
		out[i] = Entry{Name: names[i], Count: c}
	}
	return out
}

func TestPicker_Empty(t *testing.T) {
	_, err := NewPicker().Pick(nil)
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestPicker_SingleEntryAlwaysPicked(t *testing.T) {
	src := fixedSource{0.999999}
	es := entries(42)

	name, err := NewPickerWithSource(&src).Pick(es)

	require.NoError(t, err)
	assert.Equal(t, "a.png", name)
	assert.Equal(t, uint64(43), es[0].Count)
}

func TestPicker_WalksCumulativeWeight(t *testing.T) {
	cases := []struct {
		r    float64
		want string
	}{
		{0, "a.png"},
		{0.30, "a.png"},
		{0.34, "b.png"},
		{0.66, "b.png"},
		{0.67, "c.png"},
		{0.999999, "c.png"},
	}
	for _, tc := range cases {
		src := fixedSource{tc.r}
		name, err := NewPickerWithSource(&src).Pick(entries(0, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, tc.want, name, "r=%v", tc.r)
	}
}

func TestPicker_RoundingFallsToLastEntry(t *testing.T) {
	// A source returning exactly 1 puts r at the total weight, past every
	// cumulative sum that rounding might leave short.
	src := fixedSource{1}
	es := entries(3, 1, 2)

	name, err := NewPickerWithSource(&src).Pick(es)

	require.NoError(t, err)
	assert.Equal(t, "c.png", name)
}

func TestPicker_IncrementsExactlyOne(t *testing.T) {
	p := NewPicker()
	es := entries(4, 0, 9, 2)
	before := append([]Entry(nil), es...)

	name, err := p.Pick(es)
	require.NoError(t, err)

	changed := 0
	for i := range es {
		if es[i] == before[i] {
			continue
		}
		changed++
		assert.Equal(t, name, es[i].Name)
		assert.Equal(t, before[i].Count+1, es[i].Count)
	}
	assert.Equal(t, 1, changed)
}

func TestPicker_Weights(t *testing.T) {
	w := NewPicker().Weights(entries(0, 1000))

	assert.Equal(t, 1.0, w[0])
	assert.InDelta(t, 0.368, w[1], 0.001)
}

func TestPicker_UniformForEqualCounts(t *testing.T) {
	const trials = 30000
	p := NewPicker()
	hits := map[string]int{}
	for range trials {
		es := entries(0, 0, 0)
		name, err := p.Pick(es)
		require.NoError(t, err)
		hits[name]++
	}
	for _, n := range []string{"a.png", "b.png", "c.png"} {
		assert.InDelta(t, trials/3, hits[n], trials*0.03, "entry %s", n)
	}
}

func TestPicker_FavoursLowCounts(t *testing.T) {
	const trials = 30000

	// With the default base a gap of 10 barely moves the odds, so the
	// [0, 10, 10] case runs with a steeper base.
	p := NewPicker().WithFactor(1.5)
	hits := map[string]int{}
	for range trials {
		name, err := p.Pick(entries(0, 10, 10))
		require.NoError(t, err)
		hits[name]++
	}
	assert.Greater(t, hits["a.png"], 10*hits["b.png"])
	assert.Greater(t, hits["a.png"], 10*hits["c.png"])

	p = NewPicker()
	hits = map[string]int{}
	for range trials {
		name, err := p.Pick(entries(0, 5000, 5000))
		require.NoError(t, err)
		hits[name]++
	}
	assert.Greater(t, hits["a.png"], trials*9/10)
}
