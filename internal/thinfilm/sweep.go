package thinfilm

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// RT is one sweep sample: the swept variable (wavelength or angle) and the
// reflectance and transmittance there.
type RT struct {
	X Real
	R Real
	T Real
}

// Grid returns n evenly spaced values spanning [lo, hi].
func Grid(lo, hi Real, n int) []Real {
	return floats.Span(make([]Real, n), lo, hi)
}

// sweep fans the n independent solves out over up to NumCPU workers and
// keeps the input order in the output. The first error wins.
func sweep(n int, solve func(i int) (Real, Real, error), x func(i int) Real) ([]RT, error) {
	out := make([]RT, n)
	errs := make([]error, n)
	if n == 0 {
		return out, nil
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	DebugLogOnce("Sweeping with up to %d workers", workers)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, t, err := solve(i)
				out[i] = RT{X: x(i), R: r, T: t}
				errs[i] = err
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SweepWavelength solves the stack at every wavelength in lams at a fixed
// incidence angle. The stack must not be mutated while the sweep runs.
func SweepWavelength(s *Stack, pol Polarization, th0 complex128, lams []Real) ([]RT, error) {
	return sweep(len(lams),
		func(i int) (Real, Real, error) { return CoherentTMM(s, pol, th0, lams[i]) },
		func(i int) Real { return lams[i] })
}

// SweepAngle solves the stack at every incidence angle in ths (radians,
// measured from the normal) at a fixed wavelength.
func SweepAngle(s *Stack, pol Polarization, ths []Real, lamVac Real) ([]RT, error) {
	return sweep(len(ths),
		func(i int) (Real, Real, error) { return CoherentTMM(s, pol, complex(ths[i], 0), lamVac) },
		func(i int) Real { return ths[i] })
}
