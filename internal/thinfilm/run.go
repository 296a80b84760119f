package thinfilm

import (
	"fmt"
	"math"
	"os"
	"time"
)

// parsePolarization maps the config string to a polarization; the empty
// string and "u" mean unpolarized (the s/p average).
func parsePolarization(s string) (pol Polarization, unpolarized bool, err error) {
	switch s {
	case "s":
		return PolS, false, nil
	case "p":
		return PolP, false, nil
	case "", "u", "unpolarized":
		return 0, true, nil
	}
	return 0, false, fmt.Errorf("config: unknown polarization %q (want s, p or u)", s)
}

// Run loads a job config, builds the stack and produces the requested
// outputs on stdout (and a plot file when configured).
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	s, err := cfg.BuildStack()
	if err != nil {
		return err
	}
	pol, unpolarized, err := parsePolarization(cfg.Polarization)
	if err != nil {
		return err
	}
	th0 := complex(cfg.AngleDeg*math.Pi/180, 0)

	if cfg.PrintStack {
		lam := cfg.Wavelength
		if lam == 0 && cfg.Sweep != nil {
			lam = cfg.Sweep.From
		}
		s.PrintLayers(os.Stdout, lam)
	}

	if cfg.Sweep == nil {
		var r, t Real
		if unpolarized {
			r, t, err = UnpolarizedRT(s, th0, cfg.Wavelength)
		} else {
			r, t, err = CoherentTMM(s, pol, th0, cfg.Wavelength)
		}
		if err != nil {
			return err
		}
		fmt.Printf("lambda = %g nm  angle = %g deg  pol = %s\n", cfg.Wavelength, cfg.AngleDeg, polLabel(pol, unpolarized))
		fmt.Printf("R = %.6g  T = %.6g  A = %.6g\n", r, t, 1-r-t)
		return nil
	}

	if cfg.Sweep.Steps < 2 {
		return fmt.Errorf("config: sweep needs at least 2 steps, got %d", cfg.Sweep.Steps)
	}
	lams := Grid(cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Steps)

	start := time.Now()
	var pts []RT
	if unpolarized {
		ps, err := SweepWavelength(s, PolS, th0, lams)
		if err != nil {
			return err
		}
		pp, err := SweepWavelength(s, PolP, th0, lams)
		if err != nil {
			return err
		}
		pts = make([]RT, len(ps))
		for i := range ps {
			pts[i] = RT{X: ps[i].X, R: (ps[i].R + pp[i].R) / 2, T: (ps[i].T + pp[i].T) / 2}
		}
	} else {
		pts, err = SweepWavelength(s, pol, th0, lams)
		if err != nil {
			return err
		}
	}
	DebugLog("Swept %d wavelengths in %s", len(lams), time.Since(start))

	for _, pt := range pts {
		fmt.Printf("%g\t%.6g\t%.6g\n", pt.X, pt.R, pt.T)
	}
	if cfg.PlotOut != "" {
		if err := SaveSpectrumPNG(pts, "wavelength (nm)", cfg.PlotOut); err != nil {
			return err
		}
	}
	return nil
}

func polLabel(pol Polarization, unpolarized bool) string {
	if unpolarized {
		return "u"
	}
	return pol.String()
}
