package thinfilm

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"
)

// Polarization selects the electric-field orientation relative to the
// plane of incidence.
type Polarization int

const (
	PolS Polarization = iota // TE, E-field perpendicular to the plane of incidence
	PolP                     // TM, E-field in the plane of incidence
)

func (p Polarization) String() string {
	switch p {
	case PolS:
		return "s"
	case PolP:
		return "p"
	}
	return fmt.Sprintf("Polarization(%d)", int(p))
}

// isForwardAngle reports whether a wave at angle theta in a medium of
// index n travels from the incidence side towards the exit side. For real
// n and theta the criterion is just -pi/2 < theta < pi/2; with complex
// values the decaying branch wins, falling back to the sign of the
// Poynting flux. See arxiv.org/abs/1603.02720 appendix D. If theta is the
// forward angle then pi-theta is the backward one and vice versa.
func isForwardAngle(n, theta complex128) bool {
	if real(n)*imag(n) < 0 {
		warnf("thinfilm: medium with gain (n = %.3e%+.3ei, angle %.3e%+.3ei): ambiguous which beam is incoming vs outgoing, see arxiv.org/abs/1603.02720 appendix C",
			real(n), imag(n), real(theta), imag(theta))
	}
	nct := n * cmplx.Cos(theta)
	var forward bool
	if math.Abs(imag(nct)) > 100*eps {
		// evanescent decay or lossy medium: the decaying wave is the
		// forward-moving one
		forward = imag(nct) > 0
	} else {
		// forward is the one with positive Poynting flux; Re[n cos(theta)]
		// (s) and Re[n cos(theta*)] (p) agree in this regime
		forward = real(nct) > 0
	}
	// cross-check the remaining sign conventions against the chosen branch
	nctc := n * cmplx.Cos(cmplx.Conj(theta))
	inconsistent := false
	if forward {
		inconsistent = imag(nct) <= -100*eps || real(nct) <= -100*eps || real(nctc) <= -100*eps
	} else {
		inconsistent = imag(nct) >= 100*eps || real(nct) >= 100*eps || real(nctc) >= 100*eps
	}
	if inconsistent {
		warnf("thinfilm: unclear which beam is incoming vs outgoing, weird index maybe? n = %.3e%+.3ei, angle %.3e%+.3ei",
			real(n), imag(n), real(theta), imag(theta))
	}
	return forward
}

// listSnell propagates the incidence angle through every layer with
// Snell's law on the principal arcsin branch. Only the first and last
// entries are branch-corrected to the forward angle; interior branches do
// not affect the observables (arxiv.org/abs/1603.02720 section 5).
func listSnell(th0 complex128, ns []complex128) []complex128 {
	ths := make([]complex128, len(ns))
	for i := range ns {
		ths[i] = cmplx.Asin(ns[0] * cmplx.Sin(th0) / ns[i])
	}
	if !isForwardAngle(ns[0], ths[0]) {
		ths[0] = math.Pi - ths[0]
	}
	last := len(ths) - 1
	if !isForwardAngle(ns[last], ths[last]) {
		ths[last] = math.Pi - ths[last]
	}
	return ths
}

// opacityOnce gates the one-time clamp notice. It is the only process-wide
// state of the solver and is never read in a numerical path.
var opacityOnce sync.Once

// CoherentTMM computes the reflectance and transmittance of the stack for
// a monochromatic plane wave of vacuum wavelength lamVac, entering at
// angle th0 measured from the surface normal in the incidence medium.
//
// th0 may be complex; for an absorbing incidence medium it must be chosen
// so that n0*sin(th0) is real (constant intensity along the surface).
// lamVac shares one length unit with the layer thicknesses.
//
// Domain errors (bad wavelength, bad angle, dispersion failures) abort the
// solve. NaN or Inf from pathological inputs are returned as-is for the
// caller to inspect. The stack is never mutated.
func CoherentTMM(s *Stack, pol Polarization, th0 complex128, lamVac Real) (Real, Real, error) {
	if s == nil || s.Len() < 2 {
		return 0, 0, errors.New("thinfilm: stack needs at least the incidence and exit media")
	}
	if !(lamVac > 0) || !isFinite(lamVac) {
		return 0, 0, fmt.Errorf("thinfilm: vacuum wavelength must be positive and finite, got %g", lamVac)
	}

	ns, err := s.indices(lamVac)
	if err != nil {
		return 0, 0, err
	}
	num := len(ns)

	if math.Abs(imag(ns[0]*cmplx.Sin(th0))) >= 100*eps {
		return 0, 0, fmt.Errorf("thinfilm: n0*sin(th0) = %v is not real; for an absorbing incidence medium pick th0 so the lateral intensity is constant", ns[0]*cmplx.Sin(th0))
	}
	if !isForwardAngle(ns[0], th0) {
		return 0, 0, fmt.Errorf("thinfilm: th0 = %v is not forward-propagating in the incidence medium", th0)
	}

	ths := listSnell(th0, ns)

	// kz is the z-component of the complex angular wavevector of the
	// forward wave in each layer; positive imaginary part means decay.
	kz := make([]complex128, num)
	for i := range ns {
		kz[i] = 2 * math.Pi * ns[i] * cmplx.Cos(ths[i]) / complex(lamVac, 0)
	}

	// delta is the phase accrued crossing a layer once. The endpoints are
	// semi-infinite and their delta is never used.
	delta := make([]complex128, num)
	for i := 1; i < num-1; i++ {
		delta[i] = kz[i] * complex(s.layers[i].Thickness, 0)
	}

	// An almost perfectly opaque layer overflows exp(i*delta); capping
	// Im(delta) at 35 keeps single-pass transmission near 1e-30, small
	// enough that the exact value cannot be observed.
	for i := 1; i < num-1; i++ {
		if imag(delta[i]) > opacityLimit {
			delta[i] = complex(real(delta[i]), opacityLimit)
			opacityOnce.Do(func() {
				warnf("thinfilm: almost perfectly opaque layers are made slightly transmissive (1 photon in 1e30) for numerical stability; this notice is printed once per process")
			})
		}
	}

	// Amplitudes at the interface from layer i into layer i+1.
	tl := make([]complex128, num-1)
	rl := make([]complex128, num-1)
	for i := 0; i < num-1; i++ {
		ci := cmplx.Cos(ths[i])
		cf := cmplx.Cos(ths[i+1])
		ii := ns[i] * ci
		if pol == PolS {
			ff := ns[i+1] * cf
			tl[i] = 2 * ii / (ii + ff)
			rl[i] = (ii - ff) / (ii + ff)
		} else {
			fi := ns[i+1] * ci
			fo := ns[i] * cf
			tl[i] = 2 * ii / (fi + fo)
			rl[i] = (fi - fo) / (fi + fo)
		}
	}

	// One transfer matrix per film (propagation then interface), composed
	// front to back. With no films the product is empty and the identity
	// leaves the bare Fresnel result of the single interface.
	//
	// The same matrices would also support back-substituting the per-layer
	// field amplitudes, but those are not an observable here.
	mt := I2()
	for i := 1; i < num-1; i++ {
		prop := Mat2c{cmplx.Exp(-1i * delta[i]), 0, 0, cmplx.Exp(1i * delta[i])}
		face := Mat2c{1, rl[i], rl[i], 1}
		mt = mt.Mul(prop.Mul(face).Div(tl[i]))
	}
	mt = Mat2c{1, rl[0], rl[0], 1}.Div(tl[0]).Mul(mt)

	// Net complex reflection and transmission amplitudes.
	ramp := mt.M10 / mt.M00
	tamp := 1 / mt.M00

	R := absSq(ramp)

	ni, nf := ns[0], ns[num-1]
	thi, thf := th0, ths[num-1]
	var T Real
	if pol == PolS {
		T = absSq(tamp) * real(nf*cmplx.Cos(thf)) / real(ni*cmplx.Cos(thi))
	} else {
		T = absSq(tamp) * real(nf*cmplx.Conj(cmplx.Cos(thf))) / real(ni*cmplx.Conj(cmplx.Cos(thi)))
	}
	return R, T, nil
}

// UnpolarizedRT averages the s and p solutions, modeling unpolarized
// incident light.
func UnpolarizedRT(s *Stack, th0 complex128, lamVac Real) (Real, Real, error) {
	rs, ts, err := CoherentTMM(s, PolS, th0, lamVac)
	if err != nil {
		return 0, 0, err
	}
	rp, tp, err := CoherentTMM(s, PolP, th0, lamVac)
	if err != nil {
		return 0, 0, err
	}
	return (rs + rp) / 2, (ts + tp) / 2, nil
}
