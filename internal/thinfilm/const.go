package thinfilm

const (
	// float64 machine epsilon; branch and realness decisions use 100*eps
	eps = 2.220446049250313e-16
	// Im(delta) cap for almost perfectly opaque layers; exp(-35) puts
	// single-pass transmission near 1e-30, far below observability
	opacityLimit = 35
	// CLI default
	DefaultConfigPath = "configs/stack.json"
)
