package skipmap

import (
	"math"
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource replays fixed words and then returns zero, which reads as an
// endless run of tails.
type stubSource struct {
	words []uint64
	idx   int
}

func (s *stubSource) Uint64() uint64 {
	if s.idx >= len(s.words) {
		return 0
	}
	w := s.words[s.idx]
	s.idx++
	return w
}

// heightSource packs the coin flips that make a levelPolicy capped at
// maxLevel draw exactly the given heights, in order. Once they are used up
// every draw yields 1.
func heightSource(maxLevel int, heights ...int) *stubSource {
	var flips []bool
	for _, h := range heights {
		for i := 1; i < h; i++ {
			flips = append(flips, true)
		}
		if h < maxLevel {
			flips = append(flips, false)
		}
	}
	words := make([]uint64, (len(flips)+63)/64)
	for i, heads := range flips {
		if heads {
			words[i/64] |= 1 << (63 - uint(i%64))
		}
	}
	return &stubSource{words: words}
}

func TestRandomLevelDistribution(t *testing.T) {
	numSamples := 1000000
	counts := make(map[int]int)
	p := newLevelPolicy(NewSource(0x123456789abcdef), MaxLevel)
	for range numSamples {
		counts[p.drawHeight()]++
	}

	// With P = 1/2 the number of nodes reaching level i+1 should be roughly
	// half the number reaching level i.
	for i := 1; i < MaxLevel; i++ {
		count1 := counts[i]
		if count1 == 0 {
			continue
		}
		count2 := counts[i+1]
		ratio := float64(count2) / float64(count1)

		// count2 ~ Binomial(count1, P), so the ratio has variance
		// P(1-P)/count1; allow five standard deviations.
		stdDev := math.Sqrt(P * (1 - P) / float64(count1))
		tolerance := 5 * stdDev

		if math.Abs(ratio-P) > tolerance {
			t.Errorf("Expected ratio between level %d and %d to be around %.2f ± %.4f, but got %.2f", i, i+1, P, tolerance, ratio)
		}
	}
}

func TestDrawHeightFollowsCoinFlips(t *testing.T) {
	want := []int{1, 3, 2, 7, 1, 32, 5}
	p := newLevelPolicy(heightSource(MaxLevel, want...), MaxLevel)

	got := make([]int, len(want))
	for i := range want {
		got[i] = p.drawHeight()
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 1, p.drawHeight(), "exhausted stub reads as tails")
}

func TestDrawHeightIsCapped(t *testing.T) {
	allHeads := &stubSource{words: []uint64{math.MaxUint64, math.MaxUint64, math.MaxUint64}}
	p := newLevelPolicy(allHeads, MaxLevel)
	assert.Equal(t, MaxLevel, p.drawHeight())

	capped := newLevelPolicy(&stubSource{words: []uint64{math.MaxUint64}}, 4)
	for range 10 {
		assert.Equal(t, 4, capped.drawHeight())
	}
}

func TestDrawHeightAcceptsMathRandSource(t *testing.T) {
	p := newLevelPolicy(randv2.NewPCG(1, 2), MaxLevel)
	for range 1000 {
		h := p.drawHeight()
		require.GreaterOrEqual(t, h, 1)
		require.LessOrEqual(t, h, MaxLevel)
	}
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, NewSource(1).Uint64(), NewSource(2).Uint64())
	assert.NotZero(t, NewSource(0).Uint64())
}

func BenchmarkDrawHeight(b *testing.B) {
	p := newLevelPolicy(newRNG(), MaxLevel)
	for i := 0; i < b.N; i++ {
		p.drawHeight()
	}
}
