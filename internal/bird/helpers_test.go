package bird

import "github.com/vovakirdan/tui-bird/internal/config"

// scriptedRNG returns queued values (reduced modulo n) and then zeros.
type scriptedRNG struct {
	values []int
	calls  []int
}

func (r *scriptedRNG) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func testConfig() config.BirdConfig {
	return config.DefaultBirdConfig()
}
