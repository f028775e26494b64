package sweeper

// RNG is a deterministic pseudo-random number generator.
// It is a plain value: copying a Session forks its random stream, so two
// sessions never advance each other's generator.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
// The seed is scrambled first so that nearby seeds, including a state taken
// from another generator, start unrelated streams.
func NewRNG(seed int64) RNG {
	return RNG{state: mixSeed(uint64(seed))} //#nosec G115 -- intentional conversion for RNG seeding
}

// mixSeed is the splitmix64 finalizer.
func mixSeed(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
// The high bits are used because the low bits of an LCG have short periods.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the raw generator state for snapshots.
func (r RNG) State() uint64 {
	return r.state
}
