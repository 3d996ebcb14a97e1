package skipmap

import "time"

const defaultSeed = uint64(0xdeadbeefcafebabe)

// Source supplies the random bits consumed by the leveling policy.
// Any math/rand/v2.Source satisfies it.
type Source interface {
	Uint64() uint64
}

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is a xorshift64* generator and the default Source of a Map.
// It is not safe for concurrent use.
type RNG struct {
	seed uint64
}

// NewSource returns an RNG seeded with seed. A zero seed is replaced with a
// fixed non-zero constant.
func NewSource(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{seed: seed}
}

func newRNG() *RNG {
	return NewSource(newRandomSeed())
}

// Uint64 implements Source.
func (r *RNG) Uint64() uint64 {
	x := r.seed
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.seed = x
	return x * 2685821657736338717
}

// levelPolicy turns a Source into a stream of fair coin flips and draws node
// heights from it. Flips consume the source one bit at a time, most
// significant bit first.
type levelPolicy struct {
	src      Source
	maxLevel int
	bits     uint64
	avail    int
}

func newLevelPolicy(src Source, maxLevel int) levelPolicy {
	return levelPolicy{src: src, maxLevel: maxLevel}
}

func (p *levelPolicy) flip() bool {
	if p.avail == 0 {
		p.bits = p.src.Uint64()
		p.avail = 64
	}
	heads := p.bits>>63 == 1
	p.bits <<= 1
	p.avail--
	return heads
}

// drawHeight returns a height in [1, maxLevel]: one level, plus one more for
// every consecutive heads.
func (p *levelPolicy) drawHeight() int {
	height := 1
	for height < p.maxLevel && p.flip() {
		height++
	}
	return height
}
